// Package kbchat implements a deployable knowledge-base chat server.
//
// The service provides:
//   - Thread lifecycle management (create, get, list, delete)
//   - Streaming chat turns over Server Sent Events
//   - Retrieval-augmented responses delegated to an external AI platform
//   - Citation extraction resolved against a document registry
//   - Document listing and file preview endpoints
//
// For more information, see the README.md file.
package kbchat
