// Package i18n holds the UI string tables for the supported languages.
package i18n

// DefaultLang is used when no language cookie is present
const DefaultLang = "zh"

// Strings is a UI string table for one language
type Strings map[string]string

var languages = map[string]Strings{
	"en": {
		"title":            "Login",
		"username":         "Username",
		"password":         "Password",
		"confirm_password": "Confirm Password",
		"submit":           "Login",
		"no_account":       "Don't have an account?",
		"register_link":    "Register here",
		"welcome_title":    "Welcome to Snake Game",
		"welcome_message":  "Challenge yourself with different difficulty levels and compete with other players!",
		"play_now":         "Play Now",
		"login":            "Login",
		"register":         "Register",
		"home":             "Home",
		"play":             "Play",
		"leaderboard":      "Leaderboard",
		"logout":           "Logout",
		"game_title":       "Snake Game",
		"game_controls":    "Game Controls",
		"controls_arrow":   "Use arrow keys to control the snake",
		"controls_wasd":    "Or use WASD keys",
		"game_settings":    "Game Settings",
		"difficulty":       "Difficulty",
		"easy":             "Easy",
		"medium":           "Medium",
		"hard":             "Hard",
		"score":            "Score",
		"start_game":       "Start Game",
		"pause_game":       "Pause",
		"leaderboard_title": "Leaderboard",
		"last_played":      "Last Played",
		"fullscreen":       "Fullscreen",
	},
	"zh": {
		"title":            "登录",
		"username":         "用户名",
		"password":         "密码",
		"confirm_password": "确认密码",
		"submit":           "登录",
		"no_account":       "还没有账号？",
		"register_link":    "立即注册",
		"welcome_title":    "欢迎来到贪吃蛇游戏",
		"welcome_message":  "挑战不同难度级别，与其他玩家一较高下！",
		"play_now":         "开始游戏",
		"login":            "登录",
		"register":         "注册",
		"home":             "首页",
		"play":             "游戏",
		"leaderboard":      "排行榜",
		"logout":           "退出",
		"game_title":       "贪吃蛇游戏",
		"game_controls":    "游戏控制",
		"controls_arrow":   "使用方向键控制蛇的移动",
		"controls_wasd":    "或使用WASD键",
		"game_settings":    "游戏设置",
		"difficulty":       "难度",
		"easy":             "简单",
		"medium":           "中等",
		"hard":             "困难",
		"score":            "分数",
		"start_game":       "开始游戏",
		"pause_game":       "暂停",
		"leaderboard_title": "排行榜",
		"last_played":      "最后游戏时间",
		"fullscreen":       "全屏",
	},
}

// Known reports whether code is a supported language code
func Known(code string) bool {
	_, ok := languages[code]
	return ok
}

// Table returns the string table for code, falling back to the default language
func Table(code string) Strings {
	if table, ok := languages[code]; ok {
		return table
	}
	return languages[DefaultLang]
}
