// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/meta"
)

const bashCompletionScript = `# bash completion for brewfmt
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_brewfmt()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "report update outdated completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--no-color --width -w --cask-separator --sort -s --filter -f"

    case "$cmd" in
        report)
            local opts="$common --brew --timeout --no-update --cached"
            ;;
        update)
            local opts="$common --outdated-file"
            ;;
        outdated)
            local opts="$common --output -o"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --sort|-s)
            COMPREPLY=( $(compgen -W "name installed current tier" -- "$cur") )
            return 0
            ;;
        --outdated-file|--brew)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* || "$cmd" == "report" ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # update and outdated read a file or - for stdin.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _brewfmt brewfmt
`

const zshCompletionScript = `#compdef brewfmt

_brewfmt() {
  local -a cmds
  cmds=(
    'report:run brew update and brew outdated and format both'
    'update:format brew update output'
    'outdated:format brew outdated output'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '--no-color[disable colored output]'
  '(-w --width)'{-w,--width}'[terminal width]:width'
  '--cask-separator[installed versions separator]:separator'
  '(-s --sort)'{-s,--sort}'[sort fields]:fields:(name installed current tier)'
  '(-f --filter)'{-f,--filter}'[filter expressions]:filters'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'brewfmt commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    report)
      _arguments -C \
        $common \
        '--brew[path to brew]:brew:_files' \
        '--timeout[brew timeout]:duration' \
        '--no-update[skip brew update]' \
        '--cached[render the last cached outdated listing]'
      ;;
    update)
      _arguments -C \
        $common \
        '--outdated-file[brew outdated output used to mark names]:file:_files' \
        '::input:_files'
      ;;
    outdated)
      _arguments -C \
        $common \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '::input:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _brewfmt brewfmt
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)

	shell := cmd.Args().First()
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(m.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(m.Stdout, zshCompletionScript)
	default:
		fmt.Fprintln(m.Stderr, "usage: brewfmt completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "brewfmt completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
