/*
Package operation implements the core pipeline for fixing a scene file.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Stripper  |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates the read, strip and write-back of the target file
- Owns the file I/O semantics (in-place overwrite, optional backup)
- Wraps every failure with context so the CLI can surface it

🔄 Flow:
1. Read the whole target file into memory (UTF-8)
2. Run the stripper pipeline (four rules, then normalization)
3. Fix: overwrite the file in place; Check: stop after the pipeline
4. Return the Result for user-facing reporting

⚡ Key Responsibilities:
- File reading and in-place overwriting
- Dry-run and backup switches
- Sync/async execution via the runner

📝 Design Philosophy:
The operator is deliberately all-or-nothing: any read or write error is
fatal, there is no retry, and the overwrite is a plain write with no
temp-file dance. The only state is the in-memory text between read and
write. Transformation logic lives entirely in the stripper package; the
operator only moves bytes between disk and the stripper.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Stripper: s,
	})
	if err != nil {
		return err
	}
	result, err := op.Fix(ctx)
*/
package operation
