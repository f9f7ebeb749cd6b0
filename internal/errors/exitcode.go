package errors

// ExitCode 是进程退出码（稳定契约）。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: key 语法 / 参数错误
	ExitUsage ExitCode = 2

	// 3: key 或 secret 不存在
	ExitNotFound ExitCode = 3

	// 4: credentials 文件无法解析
	ExitParse ExitCode = 4

	// 5: 读写失败
	ExitIO ExitCode = 5

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeKeyInvalid:
		return ExitUsage
	case CodeKeyNotFound, CodeSecretNotFound:
		return ExitNotFound
	case CodeParseFailed:
		return ExitParse
	case CodeIOFailed:
		return ExitIO
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
