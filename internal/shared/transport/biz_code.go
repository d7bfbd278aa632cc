package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 命令处理结果码，写进 access 日志的 biz_code 字段。
// 1~499 是玩家操作被规则拒绝，>=500 是程序自身的问题。
const (
	OK           BizCode = 0
	InvalidInput BizCode = 100
	InvalidRoute BizCode = 101
	AttackMissed BizCode = 200
	SystemError  BizCode = 500
)
