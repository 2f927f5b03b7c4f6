// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the fmtkit TUI.

Components are plain renderers over a *styles.Theme. They hold no Bubble Tea
state of their own except the toast manager, which the tools model ticks.

# Display Components

Header (header.go) - Title bar with a gradient title on true-color terminals.
TabBar (tabbar.go) - Converter, JSON Validator and YAML Validator tabs.
StatusBar (statusbar.go) - Active tool, declared format, input size and key hints.
CodeBlock (codeblock.go) - JSON/YAML output highlighted with Chroma.
RenderResult (resultbox.go) - Validator result boxes.
RenderMarkdown (markdown.go) - Glamour rendering for the help panel.

# Feedback

ToastManager (toast.go) - Auto-dismissing notifications. It implements
toolkit.Notifier, so the controller reports into it directly:

	toasts := components.NewToastManager(3 * time.Second)
	ctrl, _ := toolkit.New(toolkit.Options{Notifier: toasts})
	ctrl.Convert(input)
	view := components.RenderToastStack(toasts.GetToasts(), width, height)
*/
package components
