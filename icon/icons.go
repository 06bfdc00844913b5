package icon

// Icon is the stable key of a UI symbol. Domain packages hand these keys to renderers.
type Icon string

// Feedback indicators.
const (
	Fail     Icon = "fail"
	Success  Icon = "success"
	Progress Icon = "progress"
	Warn     Icon = "warn"
	Link     Icon = "link"
	Download Icon = "download"
	Clock    Icon = "clock"
	User     Icon = "user"
	Eye      Icon = "eye"
	Disk     Icon = "disk"
	Film     Icon = "film"
	Lua      Icon = "lua"
)

// Platform identities.
const (
	YouTube     Icon = "youtube"
	Instagram   Icon = "instagram"
	TikTok      Icon = "tiktok"
	Twitter     Icon = "twitter"
	Facebook    Icon = "facebook"
	Vimeo       Icon = "vimeo"
	Dailymotion Icon = "dailymotion"
	Globe       Icon = "globe"
)

// Rendition tiers.
const (
	Gem   Icon = "gem"
	Crown Icon = "crown"
	Star  Icon = "star"
	Play  Icon = "play"
	Music Icon = "music"
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "x", kaomoji: "(×﹏×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "v", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・)…", squares: "🟦"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(°ロ°)", squares: "🟨"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(・∀・)ノ", squares: "🟪"},
	Download: {emoji: "📥", nerd: "", plain: "dl", kaomoji: "(っ˘ω˘ς)", squares: "🟦"},
	Clock:    {emoji: "🕒", nerd: "", plain: "time", kaomoji: "(⌐■_■)", squares: "⬜"},
	User:     {emoji: "👤", nerd: "", plain: "by", kaomoji: "(・ω・)", squares: "⬜"},
	Eye:      {emoji: "👁", nerd: "", plain: "views", kaomoji: "(◉_◉)", squares: "⬜"},
	Disk:     {emoji: "💾", nerd: "", plain: "size", kaomoji: "(￣▽￣)", squares: "⬜"},
	Film:     {emoji: "🎞", nerd: "", plain: "fps", kaomoji: "(°▽°)", squares: "⬜"},
	Lua:      {emoji: "🌙", nerd: "", plain: "lua", kaomoji: "(｡◕‿◕｡)", squares: "🟦"},

	YouTube:     {emoji: "▶️", nerd: "", plain: "[YT]", kaomoji: "(▶‿▶)", squares: "🟥"},
	Instagram:   {emoji: "📸", nerd: "", plain: "[IG]", kaomoji: "(◕ᴗ◕)", squares: "🟪"},
	TikTok:      {emoji: "🎵", nerd: "", plain: "[TT]", kaomoji: "(♪^∇^)", squares: "⬛"},
	Twitter:     {emoji: "🐦", nerd: "", plain: "[TW]", kaomoji: "(・ε・)", squares: "🟦"},
	Facebook:    {emoji: "📘", nerd: "", plain: "[FB]", kaomoji: "(｀・ω・)", squares: "🟦"},
	Vimeo:       {emoji: "🎬", nerd: "", plain: "[VM]", kaomoji: "(＾▽＾)", squares: "🟦"},
	Dailymotion: {emoji: "📺", nerd: "", plain: "[DM]", kaomoji: "(・▽・)", squares: "🟦"},
	Globe:       {emoji: "🌐", nerd: "", plain: "[??]", kaomoji: "(・・?)", squares: "⬜"},

	Gem:   {emoji: "💎", nerd: "", plain: "4K", kaomoji: "(✧ω✧)", squares: "🟪"},
	Crown: {emoji: "👑", nerd: "", plain: "FHD", kaomoji: "(๑•̀ㅂ•́)و", squares: "🟨"},
	Star:  {emoji: "⭐", nerd: "", plain: "HD", kaomoji: "(☆▽☆)", squares: "🟩"},
	Play:  {emoji: "▶️", nerd: "", plain: "SD", kaomoji: "(・o・)", squares: "⬜"},
	Music: {emoji: "🎧", nerd: "", plain: "AUD", kaomoji: "(♪´▽`)", squares: "🟧"},
}
