/*
Package match is the engine that locates and rewrites occurrences of a
compiled template's shape inside document text.

	             +-----------+
	             | Template  |
	             | (shape)   |
	             +-----+-----+
	                   |
	       +-----------+-----------+
	       |                       |
	 +-----+------+        +------+------+
	 |  FindBest  |        | ReplaceAll  |
	 | one line,  |        | many lines, |
	 | scored     |        | sequential  |
	 +------------+        +-------------+

🎯 Purpose:
- Enumerate structural occurrences of a template in target text
- Pick the best single-line candidate by similarity score
- Rewrite every occurrence across a line range, advancing the counter
  once per replacement in deterministic order

🔄 Flow:
1. Session compiles the register text into a template
2. FindBest (ReplaceLine) or ReplaceAll (ReplaceMulti) scans targets
3. Each accepted replacement advances the sequence counter
4. Report goes back to the session for notification and write-back

⚡ Key Responsibilities:
- Overlap-aware candidate enumeration (every start offset considered)
- Threshold gating for single-line mode
- Strict left-to-right, line-by-line replacement order
- Distinct errors for degenerate templates vs. genuine no-match

📝 Design Philosophy:
The engine never touches the counter on a failed match. Every counter
advance corresponds to exactly one substituted occurrence, which is what
makes the emitted sequence deterministic and retry-safe.
*/
package match
