package src

//-----------------------------------------------------------------------------
// base
//-----------------------------------------------------------------------------

const (
	UNKNOWN = "unknown"
	VERSION = "0.1.0"
)

//-----------------------------------------------------------------------------
// errors
//-----------------------------------------------------------------------------

// ErrEmptyCollection is returned by every removal or peek on an empty
// List, Stack or Queue.
const ErrEmptyCollection = sqError(0x01)

const (
	ERR_WRONG_TYPE  = sqError(0x02)
	ERR_UNKNOWN_CMD = sqError(0x03)
	ERR_ARGS_NUM    = sqError(0x04)
	ERR_NOT_INTEGER = sqError(0x05)
	ERR_NO_SUCH_KEY = sqError(0x06)
	ERR_SYNTAX      = sqError(0x07)
)

//-----------------------------------------------------------------------------
// list
//-----------------------------------------------------------------------------

// iterator directions
const (
	AL_START_HEAD = 0
	AL_START_TAIL = 1
)

const (
	KIND_STACK = "stack"
	KIND_QUEUE = "queue"
	KIND_NONE  = "none"
)

//-----------------------------------------------------------------------------
// cli
//-----------------------------------------------------------------------------

const (
	CLI_OK  = 0
	CLI_ERR = 1

	CONFIG = "./ssq.conf"

	SQ_CLI_HISTFILE_DEFAULT = ".ssqcli_history"
	SQ_CLI_PROMPT_DEFAULT   = "ssq> "

	OUTPUT_PLAIN = "plain"
	OUTPUT_JSON  = "json"

	NIL_STR         = "(nil)"
	EMPTY_ARRAY_STR = "(empty array)"
)
