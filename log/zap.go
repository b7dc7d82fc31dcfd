package log

import (
	"fmt"

	"go.uber.org/zap"
)

// ZType logs the dynamic type of v, used for actions and events.
func ZType(name string, v any) zap.Field {
	return zap.String(name, fmt.Sprintf("%T", v))
}
