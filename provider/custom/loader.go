// Package custom bridges Lua adapter scripts into resolution sources.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/internal/scraper"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/util"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName returns the provider identifier of a Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource executes the script at path and checks that it defines the resolve function.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.Load(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.ResolveMediaFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.ResolveMediaFn, name)
	}

	return newLuaSource(name, state), nil
}
