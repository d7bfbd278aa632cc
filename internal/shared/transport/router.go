package transport

import (
	"AlienInvasion/internal/shared/logs"
	"AlienInvasion/modules/kit/logx"
	"context"
	"strings"
)

// Request 是一条已经解析好的命令，Name 形如 "attack.cell"（组标识.处理器标识）。
type Request struct {
	Name string
	// Line 是玩家原始输入。
	Line string
	Args any
}

// Response 由 handler 填写，Data 的含义由调用方和 handler 约定。
type Response struct {
	Code BizCode
	Msg  string
	Data any
}

type HandlerFunc func(ctx context.Context, req *Request, resp *Response)

type Group struct {
	prefix   string
	handlers map[string]HandlerFunc
}

func (g *Group) Handle(name string, h HandlerFunc) {
	g.handlers[name] = h
}

type Router struct {
	groups map[string]*Group
	log    logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.NewZapLogger(logs.Logger())
	}
	return &Router{
		groups: make(map[string]*Group),
		log:    l,
	}
}

func (r *Router) Group(prefix string) *Group {
	group := r.groups[prefix]
	if group == nil {
		group = &Group{
			prefix:   prefix,
			handlers: make(map[string]HandlerFunc),
		}
	}
	r.groups[prefix] = group
	return group
}

// Dispatch 按 req.Name 找到 handler 执行，并写一条 access 日志。
func (r *Router) Dispatch(parent context.Context, req *Request, resp *Response) {
	ctx := r.prepareDispatchContext(parent, req, resp)
	defer r.writeAccessLog(ctx, resp)

	if req == nil || resp == nil {
		r.setErrorResponse(resp, InvalidInput, "参数有误")
		return
	}

	handlerFunc := r.findHandler(req.Name, resp)
	if handlerFunc == nil {
		return
	}

	handlerFunc(ctx, req, resp)
}

func (r *Router) prepareDispatchContext(parent context.Context, req *Request, resp *Response) context.Context {
	action := "CMD unknown"
	if req != nil {
		action = "CMD " + req.Name
	}
	ctx := NewContextWithParent(parent, action)

	if resp != nil {
		// 先置系统错误，避免 handler 漏设时出现“成功假象”。
		resp.Code = SystemError
		resp.Msg = ""
	}
	return ctx
}

func (r *Router) findHandler(route string, resp *Response) HandlerFunc {
	prefix, handler, ok := parseRouteName(route)
	if !ok {
		r.setErrorResponse(resp, InvalidRoute, "路由参数有误")
		return nil
	}

	group := r.groups[prefix]
	if group == nil {
		r.setErrorResponse(resp, InvalidRoute, "路由组不存在")
		return nil
	}

	handlerFunc := group.handlers[handler]
	if handlerFunc == nil {
		r.setErrorResponse(resp, InvalidRoute, "路由处理器不存在")
		return nil
	}
	return handlerFunc
}

func parseRouteName(name string) (string, string, bool) {
	split := strings.Split(name, ".")
	if len(split) != 2 {
		return "", "", false
	}
	prefix := split[0]
	handler := split[1]
	if prefix == "" || handler == "" {
		return "", "", false
	}
	return prefix, handler, true
}

func (r *Router) setErrorResponse(resp *Response, code BizCode, msg string) {
	if resp == nil {
		return
	}
	resp.Code = code
	resp.Msg = msg
}

func (r *Router) writeAccessLog(ctx context.Context, resp *Response) {
	bizCode := SystemError
	if resp != nil {
		bizCode = resp.Code
	}
	SetBizCode(ctx, bizCode)
	WriteAccessLog(ctx, r.log)
}
