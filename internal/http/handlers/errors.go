// Package handlers defines the symbolic response codes used across all API
// endpoints.
//
// Every response body carries one of these codes; the i18n catalog resolves
// each into localized user-facing text. Clients are expected to branch on the
// code, never on the message.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Validation codes name the offending field and the rule, in the order
//     the checks run (required before range).
//   - Infrastructure codes (internal_error, too_many_requests) pair with real
//     HTTP status codes; business codes ride on HTTP 200.

package handlers

const (
	CodeSuccess          = "success"
	CodeInternal         = "internal_error"
	CodeInvalidJSONBody  = "invalid_json_body"
	CodeRouteNotFound    = "route_not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeRateLimited      = "too_many_requests"
	CodePayloadTooLarge  = "payload_too_large"

	// Chatroom lifecycle:
	CodeChatroomIDRequired       = "chatroom_id_is_required"
	CodeChatroomNameRequired     = "chatroom_name_is_required"
	CodeChatroomMaxRoundRequired = "chatroom_max_round_is_required"
	CodeChatroomAgentRequired    = "chatroom_agent_is_required"
	CodeChatroomAgentItemKeys    = "chatroom_agent_item_missing_keys"
	CodeChatroomNotExist         = "chatroom_does_not_exist"
	CodeChatroomDeleteSuccess    = "chatroom_delete_success"

	// Smart selection:
	CodeSmartSelectionRequired = "chatroom_smart_selection_status_is_required"
	CodeSmartSelectionRange    = "chatroom_smart_selection_status_can_only_input"

	// Agent settings:
	CodeAgentIDRequired       = "chatroom_agent_id_is_required"
	CodeAgentNotExist         = "agent_does_not_exist"
	CodeAgentActiveRequired   = "chatroom_agent_active_is_required"
	CodeAgentActiveRange      = "chatroom_agent_active_can_only_input"
	CodeAgentRelationNotExist = "chatroom_agent_relation_does_not_exist"
	CodeAgentLessThanOne      = "chatroom_agent_number_less_than_one"
)
