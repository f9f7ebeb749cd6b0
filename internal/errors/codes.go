package errors

// Code 是稳定错误码（字符串），供脚本与程序判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// Key addressing / CLI args
	CodeKeyInvalid  Code = "AISAFE_KEY_INVALID"
	CodeKeyNotFound Code = "AISAFE_KEY_NOT_FOUND"

	// keyring 引用解析失败
	CodeSecretNotFound Code = "AISAFE_SECRET_NOT_FOUND"

	// Credentials file
	CodeParseFailed Code = "AISAFE_PARSE_FAILED"
	CodeIOFailed    Code = "AISAFE_IO_FAILED"

	// Internal
	CodeInternal Code = "AISAFE_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeKeyInvalid,
		CodeKeyNotFound,
		CodeSecretNotFound,
		CodeParseFailed,
		CodeIOFailed,
		CodeInternal,
	}
}
