package custom

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidgrab/vidgrab/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

func getNumber(table *lua.LTable, key string) mo.Option[float64] {
	val := table.RawGetString(key)
	if n, ok := val.(lua.LNumber); ok {
		return mo.Some(float64(n))
	}
	return mo.None[float64]()
}

// getText accepts both strings and numbers, as scripts often pass durations either way.
func getText(table *lua.LTable, key string) mo.Option[string] {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTString, lua.LTNumber:
		return source.Text(val.String())
	default:
		return mo.None[string]()
	}
}

func renditionFromTable(table *lua.LTable) (*source.Rendition, error) {
	url := getString(table, "url")
	if url == "" {
		return nil, fmt.Errorf("rendition must have url")
	}

	r := source.NewRendition(url, getText(table, "quality").OrEmpty(), getString(table, "format"))
	if size, ok := getNumber(table, "size").Get(); ok {
		r.WithSize(lo.ToPtr(int64(size)))
	}
	if fps, ok := getNumber(table, "fps").Get(); ok {
		r.WithFPS(lo.ToPtr(int(fps)))
	}
	return r, nil
}

// recordFromTable converts the table returned by a script into a record.
// Malformed renditions are skipped; a record without any is an error.
func recordFromTable(provider string, table *lua.LTable) (*source.Record, error) {
	var (
		renditions []*source.Rendition
		errs       []error
	)

	if list, ok := table.RawGetString("renditions").(*lua.LTable); ok {
		list.ForEach(func(k, v lua.LValue) {
			tbl, ok := v.(*lua.LTable)
			if k.Type() != lua.LTNumber || !ok {
				return
			}

			r, err := renditionFromTable(tbl)
			if err != nil {
				errs = append(errs, err)
				return
			}
			renditions = append(renditions, r)
		})
	}

	if len(renditions) == 0 {
		if len(errs) > 0 {
			return nil, errs[0]
		}
		return nil, source.ErrNoMedia
	}

	record := source.NewRecord(provider, getString(table, "title"), renditions...)
	record.Thumbnail = source.Text(getString(table, "thumbnail"))
	record.Duration = getText(table, "duration")
	record.Uploader = source.Text(getString(table, "uploader"))
	if views, ok := getNumber(table, "views").Get(); ok && views >= 0 {
		record.Views = mo.Some(int64(views))
	}
	return record, nil
}
