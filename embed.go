// embed.go - 数据文件嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 图片和音频体积较大，从磁盘的 resources/ 目录加载，这里只嵌入 YAML 配置
//
//go:embed data/tuning.yaml data/resources.yaml
var dataFS embed.FS
