/*
Package status renders user-facing output for matfix runs.

	+-------------+
	|  UserLogger |
	|  (pterm)    |
	+------+------+
	       |
	+------+------+
	|  Formatter  |
	|  (color)    |
	+-------------+

🎯 Purpose:
- Per-file change feedback (fixed / unchanged / skipped / error)
- Check-run summaries with per-property counts
- The literal completion lines the tool promises on success

⚡ Key Responsibilities:
- UserLogger: pterm prefix printers keyed by change type, zerolog for
  the diagnostic side channel
- FileFormatter: fatih/color formatting for check output

📝 Design Philosophy:
Everything a user reads goes through this package; library packages log
diagnostics only. The two completion lines are printed raw, with no
printer decoration, because their exact wording is part of the tool's
contract.
*/
package status
