package cmd

import (
	"os"

	"github.com/haierkeys/link-store-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// configCandidates 未指定配置文件时依次查找的路径
var configCandidates = []string{
	"config/config-dev.yaml",
	"config.yaml",
	"config/config.yaml",
}

// defaultConfigPath 找不到配置文件时写入默认配置的位置
const defaultConfigPath = "config/config.yaml"

// findConfig 返回第一个存在的候选配置文件
func findConfig() (string, bool) {
	for _, p := range configCandidates {
		if fileurl.IsExist(p) {
			return p, true
		}
	}
	return "", false
}

// writeDefaultConfig 将内嵌的默认配置写入 path
func writeDefaultConfig(path string) error {
	if err := fileurl.CreatePath(path, os.ModePerm); err != nil {
		return errors.Wrap(err, "config file auto create error")
	}
	if err := os.WriteFile(path, []byte(configDefault), 0666); err != nil {
		return errors.Wrap(err, "config file auto create writing error")
	}
	return nil
}
