// Package events provides types and interfaces for publishing session results.
//
// Learning sessions emit events when they finish (a completed flashcard review,
// a completed quiz) without knowing who consumes them. Persistence, progress
// tracking and reporting live outside the engine and subscribe as handlers.
//
// The primary components are:
// - Event: a typed, JSON-encoded notification
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
