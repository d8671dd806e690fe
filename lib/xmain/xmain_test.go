package xmain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

type nopCloser struct {
	bytes.Buffer
}

func (*nopCloser) Close() error { return nil }

func testOpts(t *testing.T, env []string, args ...string) *Opts {
	e := xos.NewEnv(env)
	return NewOpts(e, cmdlog.NewTB(e, t), args)
}

func TestOpts(t *testing.T) {
	t.Parallel()

	t.Run("env_defaults", func(t *testing.T) {
		t.Parallel()

		o := testOpts(t, []string{"MSV_PAD=7.5", "MSV_FONT_SIZE=20", "MSV_THEME=dark", "MSV_TRANSPARENT=true"})
		pad, err := o.Float64("MSV_PAD", "pad", "", 20, "")
		require.NoError(t, err)
		size, err := o.Int("MSV_FONT_SIZE", "font-size", "", 14, "")
		require.NoError(t, err)
		theme := o.String("MSV_THEME", "theme", "t", "light", "")
		transparent, err := o.Bool("MSV_TRANSPARENT", "transparent", "", false, "")
		require.NoError(t, err)

		require.NoError(t, o.Flags.Parse(o.Args))
		assert.Equal(t, 7.5, *pad)
		assert.Equal(t, 20, *size)
		assert.Equal(t, "dark", *theme)
		assert.True(t, *transparent)
		assert.True(t, o.Changed("MSV_PAD", "pad"))
		assert.False(t, o.Changed("", "pad"))
	})

	t.Run("flags_win", func(t *testing.T) {
		t.Parallel()

		o := testOpts(t, []string{"MSV_THEME=dark"}, "-t", "light", "in.mmd")
		theme := o.String("MSV_THEME", "theme", "t", "light", "")
		require.NoError(t, o.Flags.Parse(o.Args))
		assert.Equal(t, "light", *theme)
		assert.Equal(t, []string{"in.mmd"}, o.Flags.Args())
	})

	t.Run("bad_env", func(t *testing.T) {
		t.Parallel()

		o := testOpts(t, []string{"MSV_TRANSPARENT=maybe", "MSV_PAD=wide", "MSV_FONT_SIZE=1.5"})
		_, err := o.Bool("MSV_TRANSPARENT", "transparent", "", false, "")
		var uerr UsageError
		assert.True(t, errors.As(err, &uerr))
		_, err = o.Float64("MSV_PAD", "pad", "", 20, "")
		assert.Error(t, err)
		_, err = o.Int("MSV_FONT_SIZE", "font-size", "", 14, "")
		assert.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		o := testOpts(t, nil)
		o.String("MSV_THEME", "theme", "t", "light", "the theme")
		_, _ = o.Bool("", "version", "v", false, "print the version")
		h := o.Help()
		assert.Contains(t, h, "--theme")
		assert.Contains(t, h, "the theme")
		assert.Contains(t, h, "- $MSV_THEME")
		assert.NotContains(t, h, "$version")
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	code, msg := ExitCode(nil)
	assert.Equal(t, 0, code)
	assert.Equal(t, "", msg)

	code, msg = ExitCode(fmt.Errorf("wrapped: %w", ExitErrorf(2, "x.mmd:1:1: bad")))
	assert.Equal(t, 2, code)
	assert.Equal(t, "x.mmd:1:1: bad", msg)

	code, msg = ExitCode(UsageErrorf("too many arguments"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "bad usage: too many arguments\nRun with --help to see usage.", msg)

	code, msg = ExitCode(errors.New("boom"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "boom", msg)
}

func TestReadWritePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout := &nopCloser{}
	ms := NewState("msv", nil, xos.NewEnv(nil))
	ms.Stdin = bytes.NewBufferString("from stdin")
	ms.Stdout = stdout

	b, err := ms.ReadPath("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(b))

	require.NoError(t, ms.WritePath("-", []byte("to stdout")))
	assert.Equal(t, "to stdout", stdout.String())

	fp := filepath.Join(dir, "nested", "out.svg")
	require.NoError(t, ms.WritePath(fp, []byte("<svg/>")))
	b, err = os.ReadFile(fp)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))

	b, err = ms.ReadPath(fp)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))
}

func TestHumanPath(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	ms := NewState("msv", nil, xos.NewEnv([]string{"HOME=" + home}))

	assert.Equal(t, "-", ms.HumanPath("-"))
	assert.Equal(t, filepath.Join("~", "diagrams", "a.mmd"), ms.HumanPath(filepath.Join(home, "diagrams", "a.mmd")))
	assert.Equal(t, "/elsewhere/a.mmd", ms.HumanPath("/elsewhere/a.mmd"))
}
