package main

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"github.com/Hebububu/msv/lib/xmain"
	"github.com/Hebububu/msv/msvlib"
)

// validateCmd exits non zero when file has issues that rendering would
// silently tolerate.
func validateCmd(ctx context.Context, ms *xmain.State, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	if len(args) != 1 {
		return xmain.UsageErrorf("validate must be passed exactly one input file")
	}
	inputPath := args[0]

	d, err := parse(ms, inputPath)
	if err != nil {
		return err
	}

	issues := msvlib.Validate(d)
	for _, is := range issues {
		ms.Log.Warn.Print(is)
	}
	if len(issues) > 0 {
		return xmain.ExitErrorf(1, "found %d %s in %s", len(issues), pluralize(len(issues), "issue"), ms.HumanPath(inputPath))
	}

	ms.Log.Success.Printf("%s is valid: %d %s, %d %s",
		ms.HumanPath(inputPath),
		len(d.Participants), pluralize(len(d.Participants), "participant"),
		len(d.Messages()), pluralize(len(d.Messages()), "message"),
	)
	return nil
}
