package errx

// 通用系统类错误码。规则类错误码（例如 ATTACK_EMPTY_CELL）由各自的领域包定义。
const (
	CodeInternal        Code = "INTERNAL_ERROR"
	CodeConfigInvalid   Code = "CONFIG_INVALID"
	CodeScenarioInvalid Code = "SCENARIO_INVALID"
	CodeInputClosed     Code = "INPUT_CLOSED"
)

var (
	ErrInternal        = NewSys(CodeInternal, "内部错误")
	ErrConfigInvalid   = NewSys(CodeConfigInvalid, "配置无效")
	ErrScenarioInvalid = NewSys(CodeScenarioInvalid, "场景文件无效")
	ErrInputClosed     = NewSys(CodeInputClosed, "输入已关闭")
)
