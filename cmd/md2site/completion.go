package main

import (
	"fmt"
	"io"
	"strings"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// completionCommands lists every command with its one-line description,
// in the order help shows them.
var completionCommands = []struct {
	Name string
	Desc string
}{
	{"build", "render every article, then run the site passes"},
	{"index", "regenerate the articles index from built pages"},
	{"feed", "regenerate the Atom feed from built pages"},
	{"sitemap", "regenerate sitemap.xml from the site tree"},
	{"enhance", "retrofit head metadata onto legacy article pages"},
	{"doctor", "check the site layout and configuration"},
	{"completion", "print a shell completion script"},
	{"version", "print the version"},
	{"help", "show help for a command"},
}

// completionFlags lists the flags offered after a command. Flag sets differ
// per command but the union is small enough that offering all of them keeps
// the scripts simple.
var completionFlags = []struct {
	Long  string
	Short string
	Desc  string
}{
	{"config", "c", "config file name or path"},
	{"base-url", "b", "absolute site root URL"},
	{"workers", "w", "parallel article builds"},
	{"skip-enhance", "", "skip the legacy SEO pass"},
	{"skip-index", "", "skip the articles index pass"},
	{"skip-feed", "", "skip the Atom feed pass"},
	{"skip-sitemap", "", "skip the sitemap pass"},
	{"quiet", "q", "only show errors"},
	{"verbose", "v", "show detailed timing"},
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash  Bash completion script")
	fmt.Fprintln(w, "  zsh   Zsh completion script")
	fmt.Fprintln(w, "  fish  Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2site completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2site completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2site completion fish > ~/.config/fish/completions/md2site.fish")
}

func commandNames() []string {
	names := make([]string, len(completionCommands))
	for i, c := range completionCommands {
		names[i] = c.Name
	}
	return names
}

func generateBash(w io.Writer) error {
	var longs []string
	for _, f := range completionFlags {
		longs = append(longs, "--"+f.Long)
	}

	_, err := fmt.Fprintf(w, `# bash completion for md2site
_md2site() {
    local cur prev commands flags
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    commands="%s"
    flags="%s"

    case "$prev" in
        --config|-c)
            COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- "$cur") $(compgen -d -- "$cur") )
            return
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "$cur") )
            return
            ;;
        help)
            COMPREPLY=( $(compgen -W "$commands" -- "$cur") )
            return
            ;;
    esac

    if [[ $COMP_CWORD -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "$commands" -- "$cur") )
        return
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$flags" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -d -- "$cur") )
}
complete -F _md2site md2site
`, strings.Join(commandNames(), " "), strings.Join(longs, " "))
	return err
}

func generateZsh(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("#compdef md2site\n# zsh completion for md2site\n\n_md2site() {\n")
	sb.WriteString("    local -a commands flags\n    commands=(\n")
	for _, c := range completionCommands {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, c.Desc)
	}
	sb.WriteString("    )\n    flags=(\n")
	for _, f := range completionFlags {
		fmt.Fprintf(&sb, "        '--%s[%s]'\n", f.Long, f.Desc)
		if f.Short != "" {
			fmt.Fprintf(&sb, "        '-%s[%s]'\n", f.Short, f.Desc)
		}
	}
	sb.WriteString(`    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    _arguments "${flags[@]}" '*:directory:_directories'
}

compdef _md2site md2site
`)
	_, err := io.WriteString(w, sb.String())
	return err
}

func generateFish(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("# fish completion for md2site\n")
	for _, c := range completionCommands {
		fmt.Fprintf(&sb, "complete -c md2site -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, c.Desc)
	}
	for _, f := range completionFlags {
		fmt.Fprintf(&sb, "complete -c md2site -l %s", f.Long)
		if f.Short != "" {
			fmt.Fprintf(&sb, " -s %s", f.Short)
		}
		fmt.Fprintf(&sb, " -d '%s'\n", f.Desc)
	}
	sb.WriteString("complete -c md2site -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
