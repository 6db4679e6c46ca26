// Package domain contains the core learning entities (vocabulary items, quiz
// questions, session results) and the validation rules that guard them. It is
// independent of any storage or delivery mechanism; callers load items from
// wherever they live and hand copies to the engine.
package domain
