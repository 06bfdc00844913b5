// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// ResolveMediaFn is the global function every Lua adapter script must define.
const ResolveMediaFn = "ResolveMedia"

// SourceTemplate is a Go text/template for scaffolding new Lua adapter files.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }} 
-- @url     {{ .URL }}
-- @author  {{ .Author }} 
-- @license MIT
{{ $divider }}


---@alias rendition { url: string, quality: string|nil, format: string|nil, size: number|nil, fps: number|nil }
---@alias media { title: string|nil, thumbnail: string|nil, duration: string|number|nil, uploader: string|nil, views: number|nil, renditions: rendition[] }


----- IMPORTS -----
local http = require("http")
local json = require("json")
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Resolves a platform URL into downloadable renditions.
-- @param url string URL pasted by the user
-- @return media|nil Media table, or nil when this adapter cannot answer
function {{ .ResolveMediaFn }}(url)
	return nil
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
