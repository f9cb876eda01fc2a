// Package chats provides a backend-agnostic data model for chat interactions.
//
// It is organized into sub-packages:
//   - [github.com/aislehq/aisle/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/aislehq/aisle/pkg/chats/content] — content parts (text, image)
//   - [github.com/aislehq/aisle/pkg/chats/message] — messages composed of a role and content parts
//   - [github.com/aislehq/aisle/pkg/chats/chat] — mutable conversation container
//
// No backend or API code is included — chats is a foundation layer
// that adapters can build on.
package chats
