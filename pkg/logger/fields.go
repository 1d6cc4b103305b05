package logger

// 统一的日志字段命名常量
// Shared log field names so every component logs the same keys.
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldPath 请求路径字段
	FieldPath = "path"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldSize 内容大小字段
	FieldSize = "size"

	// FieldCount 链接数量字段
	FieldCount = "count"

	// FieldSource 链接来源字段
	FieldSource = "source"

	// FieldSnapshotID 导出快照 ID 字段
	FieldSnapshotID = "snapshotId"
)
