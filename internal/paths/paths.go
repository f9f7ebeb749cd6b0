package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	AppName  = "aisafe"
	FileName = "credentials.toml"

	// EnvFile 覆盖 credentials 文件路径。
	EnvFile = "AISAFE_FILE" // #nosec G101 -- environment variable name
)

// Options 的 env/home 由调用方注入，便于测试。
type Options struct {
	// Explicit: 程序入口或 --file 传入的路径；最高优先级。
	Explicit string

	// EnvFile: AISAFE_FILE 的值。
	EnvFile string

	// ConfigDir: 平台用户配置目录（os.UserConfigDir），为空则回退 ~/.config。
	ConfigDir string

	// HomeDir 用于 ~ 展开与回退路径。
	HomeDir string
}

// Resolve 计算 credentials 文件路径：Explicit > EnvFile > 平台默认。
// 纯计算：不访问文件系统、不创建目录，总是成功。
func Resolve(opts Options) string {
	if opts.Explicit != "" {
		return expandHome(opts.Explicit, opts.HomeDir)
	}
	if opts.EnvFile != "" {
		return expandHome(opts.EnvFile, opts.HomeDir)
	}
	base := opts.ConfigDir
	if base == "" {
		base = filepath.Join(opts.HomeDir, ".config")
	}
	return filepath.Join(base, AppName, FileName)
}

// Default 从当前进程环境探测 env/home 后解析。
func Default(explicit string) string {
	home, _ := os.UserHomeDir()
	cfgDir, _ := os.UserConfigDir()
	return Resolve(Options{
		Explicit:  explicit,
		EnvFile:   os.Getenv(EnvFile),
		ConfigDir: cfgDir,
		HomeDir:   home,
	})
}

func expandHome(p, home string) string {
	if home == "" {
		return p
	}
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		return filepath.Join(home, p[2:])
	}
	return p
}
