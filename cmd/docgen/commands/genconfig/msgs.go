package genconfig

// Message constants
const (
	MsgShort = "Generate the default configuration file"
	MsgLong  = `Print the default configuration with every value commented out, ready to
uncomment and edit. With -w the file is written to the user config directory
instead; an existing file is never overwritten.`

	MsgExample = `  # Print the default configuration
  docgen gen-config

  # Write it to the config directory
  docgen gen-config -w`

	MsgWrittenFormat = "Config written to %s"
	MsgExistsFormat  = "Config file already exists at %s, skipping"
)
