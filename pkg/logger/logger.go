// Package logger 提供基于zap的结构化日志
//
// # 为什么选择zap？
//
// 1. 结构化日志：以字段形式记录上下文（便于日志系统检索）
// 2. 高性能：零分配的热路径，适合高QPS服务
// 3. 级别控制：生产环境关闭debug日志，无需改代码
//
// # DO/DON'T对比
//
// ❌ DON'T: 使用fmt.Printf拼接日志（无级别、无结构、无法检索）
//
//	fmt.Printf("创建拳击手失败: %v\n", err)
//
// ✅ DO: 使用结构化字段
//
//	logger.Error("创建拳击手失败",
//	    zap.String("name", name),
//	    zap.Error(err),
//	)
//
// # 使用示例
//
//	// 1. 程序启动时初始化（通常在main中）
//	log, err := logger.Init(logger.Options{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	})
//	if err != nil {
//	    panic(err)
//	}
//	defer logger.Sync()
//
//	// 2. 业务代码中直接使用包级函数
//	logger.Info("拳击手创建成功", zap.Uint("boxer_id", id))
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
// 字段与config.LogConfig一一对应（pkg不依赖internal，通过Options解耦）
type Options struct {
	Level        string // debug | info | warn | error（默认info）
	Format       string // console | json（默认json）
	Output       string // stdout | stderr | /path/to/file（默认stdout）
	EnableCaller bool   // 是否记录调用位置（文件:行号）
}

// Init 初始化全局日志器
//
// 设计说明：
// 1. 通过zap.ReplaceGlobals注册为全局logger，业务代码无需传递logger实例
// 2. Encoding直接复用zap内置的json/console编码器
// 3. OutputPaths支持stdout/stderr/文件路径（zap原生能力）
func Init(opts Options) (*zap.Logger, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}
	if opts.Format == "" {
		opts.Format = "json"
	}
	if opts.Output == "" {
		opts.Output = "stdout"
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, fmt.Errorf("无效的日志级别: %s", opts.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         opts.Format,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{opts.Output},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !opts.EnableCaller,
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("构建日志器失败: %w", err)
	}

	// 注册为全局logger（zap.L()和包级函数都会使用它）
	zap.ReplaceGlobals(l)
	return l, nil
}

// L 返回全局日志器（需要logger实例时使用，如传递给第三方库）
func L() *zap.Logger {
	return zap.L()
}

// Sync 刷新缓冲区（程序退出前调用，确保日志不丢失）
func Sync() {
	_ = zap.L().Sync()
}

// =========================================
// 包级便捷函数（避免业务代码到处写zap.L()）
// =========================================

func Debug(msg string, fields ...zap.Field) {
	zap.L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	zap.L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	zap.L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	zap.L().Error(msg, fields...)
}
