package utils

import (
	"os"
	"path/filepath"
)

// assetDirName 资源目录名
const assetDirName = "resources"

// assetSearchDepth 向上查找的层数（含起始目录）
// 从 IDE 或 build 子目录启动时也能找到资源
const assetSearchDepth = 3

// FindAssetRoot 从 start 开始向上查找包含 resources/ 目录的路径
//
// 返回找到的目录（resources/ 的父目录）；找不到时返回 start 本身，
// 后续加载会以"文件不存在"的形式失败。
func FindAssetRoot(start string) string {
	dir := start
	for i := 0; i < assetSearchDepth; i++ {
		info, err := os.Stat(filepath.Join(dir, assetDirName))
		if err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start
}
