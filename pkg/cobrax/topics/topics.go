// Package topics adds a topic-based help system to a Cobra application.
// Beyond per-command help, arbitrary documentation pages load from a file
// system (typically an embed.FS shipped inside the binary) and surface
// through `help <topic>`, making the CLI self-documenting.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager holds the topics discovered in a file system and hooks them
// into a root command's help.
type TopicManager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic is one documentation page.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for the terminal.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager reading from fsys with default options.
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a TopicManager reading from fsys.
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// scanTopics walks the file system and loads every file with a supported
// extension. The topic name is the file name without its extension,
// regardless of the directory it sits in.
func (tm *TopicManager) scanTopics() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range tm.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag spellings resolve too:
// "--set" finds the topic file "option-set".
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, exists := tm.topics[name]
	if exists {
		return topic, true
	}

	topic, exists = tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names.
func (tm *TopicManager) ListTopics() []string {
	topics := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		topics = append(topics, name)
	}
	return topics
}

// Initialize hooks topic-based help into rootCmd with default options.
func Initialize(rootCmd *cobra.Command, fsys fs.FS) error {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions replaces rootCmd's help command with one that also
// resolves topics, and teaches the --help path to do the same. Commands keep
// priority: a topic shadowed by a command name is unreachable.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) error {
	tm := NewWithOptions(fsys, opts)

	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf(`Help provides help for any command or topic in the application.
Simply type %s help [path to command or topic] for full details.

To see all available help topics:
  %s help topics`, rootCmd.Name(), rootCmd.Name()),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				tm.printTopicList(rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}

			tm.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return nil
}

func (tm *TopicManager) printTopicList(rootName string) {
	topics := tm.ListTopics()
	if len(topics) == 0 {
		fmt.Println("No help topics available.")
		return
	}
	sort.Strings(topics)

	var options []string
	var general []string
	for _, name := range topics {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	fmt.Println("Available help topics:")
	if len(general) > 0 {
		fmt.Println("\nGeneral topics:")
		for _, name := range general {
			fmt.Printf("  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Println("\nOption topics:")
		for _, name := range options {
			fmt.Printf("  --%s\n", name)
		}
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootName)
}
