// Package i18n resolves the symbolic message codes used across the HTTP API
// into localized, user-facing text. Handlers never hardcode message strings;
// they pass a code (e.g. "chatroom_name_is_required") plus the language tag
// negotiated from the request's Accept-Language header.
package i18n

import "golang.org/x/text/language"

// supported lists the catalog languages in matcher priority order. The first
// entry is the fallback for requests that match nothing.
var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

// Match negotiates the best catalog language for an Accept-Language header
// value. An empty or unparsable header yields English.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Text returns the localized message for code in the given language. Unknown
// languages fall back to English; unknown codes fall back to the code itself
// so a missing catalog entry never hides which condition fired.
func Text(tag language.Tag, code string) string {
	if m, ok := catalog[tag]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalog[language.English][code]; ok {
		return s
	}
	return code
}

var catalog = map[language.Tag]map[string]string{
	language.English: {
		"success":            "success",
		"internal_error":     "internal server error",
		"invalid_json_body":  "invalid JSON body",
		"route_not_found":    "route not found",
		"method_not_allowed": "method not allowed",
		"too_many_requests":  "too many requests",
		"payload_too_large":  "request body too large",

		"chatroom_id_is_required":          "chatroom id is required",
		"chatroom_name_is_required":        "chatroom name is required",
		"chatroom_max_round_is_required":   "chatroom max round is required",
		"chatroom_agent_is_required":       "at least one agent is required",
		"chatroom_agent_item_missing_keys": "each agent entry must contain agent_id and active",
		"chatroom_does_not_exist":          "chatroom does not exist",
		"chatroom_delete_success":          "chatroom deleted",

		"chatroom_smart_selection_status_is_required":    "smart selection status is required",
		"chatroom_smart_selection_status_can_only_input": "smart selection status can only be 0 or 1",

		"chatroom_agent_id_is_required":          "agent id is required",
		"agent_does_not_exist":                   "agent does not exist",
		"chatroom_agent_active_is_required":      "agent active status is required",
		"chatroom_agent_active_can_only_input":   "agent active status can only be 0 or 1",
		"chatroom_agent_relation_does_not_exist": "the agent has not joined this chatroom",
		"chatroom_agent_number_less_than_one":    "a chatroom must keep at least one active agent",
	},
	language.SimplifiedChinese: {
		"success":            "成功",
		"internal_error":     "服务器内部错误",
		"invalid_json_body":  "无效的 JSON 请求体",
		"route_not_found":    "路由不存在",
		"method_not_allowed": "不支持的请求方法",
		"too_many_requests":  "请求过于频繁",
		"payload_too_large":  "请求体过大",

		"chatroom_id_is_required":          "会议室 ID 不能为空",
		"chatroom_name_is_required":        "会议室名称不能为空",
		"chatroom_max_round_is_required":   "会议室最大轮数不能为空",
		"chatroom_agent_is_required":       "请至少选择一个智能体",
		"chatroom_agent_item_missing_keys": "智能体条目必须包含 agent_id 和 active",
		"chatroom_does_not_exist":          "会议室不存在",
		"chatroom_delete_success":          "会议室已删除",

		"chatroom_smart_selection_status_is_required":    "智能选择状态不能为空",
		"chatroom_smart_selection_status_can_only_input": "智能选择状态只能为 0 或 1",

		"chatroom_agent_id_is_required":          "智能体 ID 不能为空",
		"agent_does_not_exist":                   "智能体不存在",
		"chatroom_agent_active_is_required":      "智能体启用状态不能为空",
		"chatroom_agent_active_can_only_input":   "智能体启用状态只能为 0 或 1",
		"chatroom_agent_relation_does_not_exist": "该智能体未加入此会议室",
		"chatroom_agent_number_less_than_one":    "会议室至少需要保留一个启用的智能体",
	},
}
