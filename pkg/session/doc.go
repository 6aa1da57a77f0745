/*
Package session owns the engine's mode state machine.

	 Uninitialized ──trigger──▶ prompts ──ok──▶ Active(mode, counter, scope)
	       ▲                      │                    │
	       │                   cancel            trigger: dispatch
	       │                      │                    │
	       ├──────────────────────┘          register changed? ──▶ implicit
	       │                                                        reset,
	       └──────────────── reset event ◀──────────────────────── reprompt

🎯 Purpose:
- Hold the one live session: mode, counter, scope, register snapshot
- Collect configuration through the blocking prompt channel
- Detect external register changes and re-prompt instead of reusing
  stale configuration
- Route triggers to the paste / replace-line / replace-multi handlers

🔄 Flow:
1. Host binding fires Trigger with the cursor position and selection
2. Uninitialized sessions validate the register and prompt for
   mode, sign/step and scope
3. The handler performs its operation through the host interfaces
4. Accepted work advances the counter and writes back to the register

⚡ Key Responsibilities:
- Counter mutations happen only after a confirmed match or placement
- Recoverable failures surface as exactly one notification
- Explicit selection ranges always override the configured scope
- A multi-line register contributes only its first line as template;
  the remaining lines are preserved verbatim on write-back

📝 Design Philosophy:
The session is an explicit owned value: every transition happens inside
a synchronous handler call, and the external-change check is a plain
predicate over the snapshot, not hidden global state.
*/
package session
