package main

// Short messages (one-liners)
const (
	MsgRootShort       = "A style-template document formatter"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate man pages for docgen and all its commands into a directory, one page per command."

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Version output
	MsgVersionFormat = "docgen version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Man page output
	MsgManWrittenFormat = "Man pages written to %s\n"
)

// Long messages
const (
	MsgRootLong = `docgen applies named style templates to documents. A template fixes every
visual decision for a document class (margins, fonts, spacing, indentation)
so the text you feed in comes out as a correctly formatted .docx or .pdf.

Three templates ship with docgen: default (GB/T 9704 official documents),
formal and academic. Start from one, adjust individual settings with --set
or the HTTP API, and render.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(docgen completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ docgen completion bash > /etc/bash_completion.d/docgen
  # macOS:
  $ docgen completion bash > /usr/local/etc/bash_completion.d/docgen

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ docgen completion zsh > "${fpath[1]}/_docgen"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ docgen completion fish | source
  # To load completions for each session, execute once:
  $ docgen completion fish > ~/.config/fish/completions/docgen.fish

PowerShell:
  PS> docgen completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> docgen completion powershell > docgen.ps1
  # and source this file from your PowerShell profile.
`
)
