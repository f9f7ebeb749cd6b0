package secret

import (
	stderrors "errors"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/aisafe/aisafe/internal/errors"
)

const keyringPrefix = "keyring:"

// ServiceName 是 OS keyring 中的 service 名。
const ServiceName = "aisafe"

// Options 控制 keyring 访问（nil Keyring 则用默认实现）。
type Options struct {
	Keyring KeyringAPI
}

// Resolve 解析存储值：
//  1. keyring:xxx → 从 OS keyring 读取真实 secret
//  2. 其他值原样返回（明文文件即本工具的存储模型）
func Resolve(raw string, opts Options) (string, *errors.AError) {
	if !strings.HasPrefix(raw, keyringPrefix) {
		return raw, nil
	}
	account := strings.TrimPrefix(raw, keyringPrefix)
	kr := opts.Keyring
	if kr == nil {
		kr = defaultKeyring()
	}
	val, err := kr.Get(ServiceName, account)
	if err != nil {
		return "", errors.Wrap(errors.CodeSecretNotFound, "failed to read secret from keyring", map[string]any{"account": account}, err)
	}
	return val, nil
}

// Store 把 secret 写入 OS keyring，返回应写入 credentials 文件的引用值。
func Store(account, value string, opts Options) (string, *errors.AError) {
	kr := opts.Keyring
	if kr == nil {
		kr = defaultKeyring()
	}
	if err := kr.Set(ServiceName, account, value); err != nil {
		return "", errors.Wrap(errors.CodeIOFailed, "failed to write secret to keyring", map[string]any{"account": account}, err)
	}
	return keyringPrefix + account, nil
}

// Forget 删除 keyring 条目；条目不存在不视为错误。
func Forget(raw string, opts Options) *errors.AError {
	if !strings.HasPrefix(raw, keyringPrefix) {
		return nil
	}
	account := strings.TrimPrefix(raw, keyringPrefix)
	kr := opts.Keyring
	if kr == nil {
		kr = defaultKeyring()
	}
	if err := kr.Delete(ServiceName, account); err != nil && !stderrors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(errors.CodeIOFailed, "failed to delete secret from keyring", map[string]any{"account": account}, err)
	}
	return nil
}

// IsRef 判断值是否为 keyring 引用。
func IsRef(s string) bool {
	return strings.HasPrefix(s, keyringPrefix)
}
