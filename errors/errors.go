package errors

import (
	"github.com/pkg/errors"
)

// 定义错误操作
var (
	New       = errors.New
	Errorf    = errors.Errorf
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
	WithStack = errors.WithStack
	Is        = errors.Is
	As        = errors.As
	Cause     = errors.Cause
)
