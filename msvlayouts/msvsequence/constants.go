package msvsequence

// participant boxes never shrink below this, regardless of label
const MIN_PARTICIPANT_WIDTH = 80.
const MIN_PARTICIPANT_HEIGHT = 40.

// horizontal and vertical padding inside participant boxes
const PARTICIPANT_PADDING = 20.
const PARTICIPANT_VERTICAL_PADDING = 16.

// distance between baselines of multi-line labels
const LINE_HEIGHT = 18.

// min distance between the facing edges of adjacent participant boxes
const MIN_PARTICIPANT_SPACING = 50.

// room reserved around a message label when sizing the gaps it crosses
const MESSAGE_TEXT_MARGIN = 40.

// vertical step between consecutive messages
const MESSAGE_SPACING = 50.

// extra vertical room a self message takes over a regular one
const SELF_MESSAGE_HEIGHT = 40.

const SELF_LOOP_WIDTH = 40.

// self message labels start this far right of the lifeline
const SELF_LOOP_TEXT_OFFSET = 50.

// message labels sit this far above their arrow
const MESSAGE_LABEL_OFFSET = 10.

const DEFAULT_PAD = 20.
const DEFAULT_FONT_SIZE = 14
