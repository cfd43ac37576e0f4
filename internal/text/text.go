// Package text holds the dashboard labels in each supported language.
package text

type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
)

func ParseLang(s string) Lang {
	if Lang(s) == Chinese {
		return Chinese
	}
	return English
}

// Toggle flips between the two supported languages.
func Toggle(l Lang) Lang {
	if l == Chinese {
		return English
	}
	return Chinese
}

var table = map[Lang]map[string]string{
	English: {
		"title":           "Money Tracker",
		"subtitle":        "Track your work income in real time",
		"settings":        "Settings",
		"daily_salary":    "Daily salary",
		"periods":         "Work periods",
		"period":          "Period",
		"preset":          "Preset",
		"hours":           "h",
		"current_time":    "Current time",
		"work_time":       "Work",
		"non_work_time":   "Off",
		"progress":        "Today's income progress",
		"earned_amount":   "Earned",
		"time_per_dollar": "Time per $1",
		"progress_today":  "Progress",
		"is_work_time":    "Currently in work time",
		"not_work_time":   "Currently not in work time",
		"total_work_time": "Total work time",
		"hourly_salary":   "Hourly rate",
		"minute_salary":   "Minute rate",
		"setup_prompt":    "Set your daily salary and work periods, then press Enter to start tracking.",
		"edit_period":     "Edit Period",
		"edit_salary":     "Edit Daily Salary",
		"start_time":      "Start (HH:MM)",
		"end_time":        "End (HH:MM)",
		"help_stopped":    "Navigate: Up/Down | Start: Enter | New: n | Edit: e | Delete: d | Preset: p | Salary: s | Lang: l | Quit: q",
		"help_running":    "Reset: r | Lang: l | Quit: q",
		"help_form":       "Tab: Switch | Enter: Save | Esc: Cancel",
		"status_running":  "Running",
		"status_stopped":  "Stopped",
	},
	Chinese: {
		"title":           "Money Tracker",
		"subtitle":        "实时追踪你的工作收入",
		"settings":        "设置",
		"daily_salary":    "日薪",
		"periods":         "工作时间段",
		"period":          "时间段",
		"preset":          "预设",
		"hours":           "小时",
		"current_time":    "当前时间",
		"work_time":       "工作",
		"non_work_time":   "休息",
		"progress":        "今日收入进度",
		"earned_amount":   "已赚取金额",
		"time_per_dollar": "每赚$1所需时间",
		"progress_today":  "今日进度",
		"is_work_time":    "当前是工作时间",
		"not_work_time":   "当前不是工作时间",
		"total_work_time": "总工作时间",
		"hourly_salary":   "小时薪资",
		"minute_salary":   "分钟薪资",
		"setup_prompt":    "请设置您的日薪和工作时间，然后按 Enter 开始追踪。",
		"edit_period":     "编辑时间段",
		"edit_salary":     "编辑日薪",
		"start_time":      "开始时间 (HH:MM)",
		"end_time":        "结束时间 (HH:MM)",
		"help_stopped":    "选择: 上/下 | 开始: Enter | 新增: n | 编辑: e | 删除: d | 预设: p | 日薪: s | 语言: l | 退出: q",
		"help_running":    "重置: r | 语言: l | 退出: q",
		"help_form":       "Tab: 切换 | Enter: 保存 | Esc: 取消",
		"status_running":  "追踪中",
		"status_stopped":  "已停止",
	},
}

// Get looks key up in l, falling back to English and then to the key itself.
func Get(l Lang, key string) string {
	if s, ok := table[l][key]; ok {
		return s
	}
	if s, ok := table[English][key]; ok {
		return s
	}
	return key
}
