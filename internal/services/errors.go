// Package services defines the business logic for chatroom lifecycle,
// settings, and message history. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into localized messages and envelope codes is performed at the handler layer.
package services

import "errors"

var (
	// ErrChatroomNotFound indicates that the requested chatroom does not
	// exist, is soft-deleted, or is not accessible to the current user.
	ErrChatroomNotFound = errors.New("chatroom does not exist")

	// ErrAgentNotFound indicates that the referenced agent does not exist in
	// the global agent registry.
	ErrAgentNotFound = errors.New("agent does not exist")

	// ErrAgentRelationNotFound indicates that the agent exists but has not
	// joined the chatroom in question.
	ErrAgentRelationNotFound = errors.New("agent has not joined this chatroom")

	// ErrAgentActiveRequired indicates that the request carried no active
	// flag for the membership toggle.
	ErrAgentActiveRequired = errors.New("agent active flag is required")

	// ErrAgentActiveRange indicates that the supplied active flag is outside
	// the accepted 0/1 range.
	ErrAgentActiveRange = errors.New("agent active flag must be 0 or 1")

	// ErrLastActiveAgent is returned when deactivating a membership would
	// leave the chatroom with zero active agents.
	ErrLastActiveAgent = errors.New("chatroom must keep at least one active agent")
)
