package custom

import (
	"context"
	"fmt"
	"sync"

	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/source"
	lua "github.com/yuin/gopher-lua"
)

// luaSource serializes calls since an LState is not safe for concurrent use.
type luaSource struct {
	mu    sync.Mutex
	name  string
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{
		name:  name,
		state: state,
	}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

func (s *luaSource) Resolve(ctx context.Context, url string) source.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	val, err := s.call(constant.ResolveMediaFn, lua.LString(url))
	if err != nil {
		return source.Fail(s.ID(), err)
	}

	table, ok := val.(*lua.LTable)
	if !ok {
		return source.Fail(s.ID(), source.ErrNoMedia)
	}

	record, err := recordFromTable(s.ID(), table)
	if err != nil {
		return source.Fail(s.ID(), err)
	}

	log.With(log.Fields{"provider": s.ID()}).Debugf("resolved %s with %d renditions", url, len(record.Renditions))
	return source.Ok(record)
}

// call executes a global Lua function in protected mode and returns its first result.
// A nil result is returned as lua.LNil.
func (s *luaSource) call(fn string, args ...lua.LValue) (lua.LValue, error) {
	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	switch retval.Type() {
	case lua.LTTable, lua.LTNil:
		return retval, nil
	default:
		return nil, fmt.Errorf("%s returned %s, expected table", fn, retval.Type())
	}
}
