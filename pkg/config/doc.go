/*
Package config manages configuration parsing and validation for matfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads the optional .matfix.yaml / .matfix.hcl run configuration
- Validates values and applies defaults
- Keeps the fixed rule set out of the config surface on purpose

🔄 Flow:
1. Reads configuration from file (or falls back to defaults)
2. Parses format-specific syntax via the registered parsers
3. Validates and cleans values
4. Hands the validated config to the CLI layer

⚡ Key Responsibilities:
- Target file path, dry-run, backup, async and debug settings
- Format abstraction through the Parser registry
- Default value management

📝 Design Philosophy:
The config file is entirely optional: a bare `matfix fix <file>` run
must work with no configuration at all. The file only exists so a
project can pin its scene file and preferred switches. The material
property rules are deliberately NOT configurable: the tool removes a
fixed, known-unsupported set, and a configurable rule engine would be a
different tool.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".matfix.yaml")
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	fmt.Println(cfg.File)
*/
package config
