// Package scraper compiles, caches and installs Lua adapter scripts.
package scraper

import (
	"fmt"
	"sync"

	"github.com/vidgrab/vidgrab/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// protos maps a script path to its compiled chunk.
var protos sync.Map

func compile(path string) (*lua.FunctionProto, error) {
	if proto, ok := protos.Load(path); ok {
		return proto.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	protos.Store(path, proto)
	return proto, nil
}

// Load executes the script at path inside L. Scripts are compiled once per process.
func Load(L *lua.LState, path string) error {
	proto, err := compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops the compiled chunk for path so the next Load reads it again.
func Forget(path string) {
	protos.Delete(path)
}
