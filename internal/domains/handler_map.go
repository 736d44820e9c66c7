package domains

import (
	"chatorder/internal/domains/common"
	"chatorder/internal/domains/handlers/message/parse"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	"message_parse": parse.NewParseHandler,
}
