// Package quiz generates vocabulary quizzes and runs them as timed sessions.
//
// A Generator turns a vocabulary pool into multiple-choice and
// fill-in-the-blank questions. Randomness is injected through RandomSource so
// generation is reproducible under a fixed seed.
//
// A Session presents one question at a time. Each question has a countdown
// (30 seconds by default); answering or running out of time marks it answered,
// and after a short display delay the session advances or completes. Timers
// come from an injected clockwork.Clock and are cancelled on every transition
// and on Close.
package quiz
