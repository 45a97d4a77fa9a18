package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/gazealign/dep"
	sent "github.com/revelaction/gazealign/sentence"
	"github.com/revelaction/gazealign/storage/filesystem"
	"github.com/urfave/cli/v2"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "interactive per-token view of dependency metrics (<docId> <sentId>)",
		Flags: []cli.Flag{
			corpusFlag(),
		},
		Action: runInspect,
	}
}

func runInspect(c *cli.Context) error {
	store, err := filesystem.NewDocStore(c.String("corpus"))
	if err != nil {
		return err
	}

	docs, err := store.List()
	if err != nil {
		return err
	}

	fmt.Println("🔑 <docId> <sentId> shows token metrics, quit exits")

	history := []string{}

	for {
		in := prompt.Input("      👁  ", docCompleter(docs),
			prompt.OptionTitle("gazealign inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		if err := inspectSentence(store, in); err != nil {
			fmt.Printf("✍  %v\n", err)
		}
	}
}

func inspectSentence(store *filesystem.DocStore, in string) error {
	fields := strings.Fields(in)
	if len(fields) != 2 {
		return fmt.Errorf("usage: <docId> <sentId>")
	}

	docId, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("bad doc id %q", fields[0])
	}

	sentId, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("bad sentence id %q", fields[1])
	}

	doc, err := store.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
	}

	tree := dep.NewTree(doc)

	for _, token := range doc.Sentences[sentId].Tokens {
		marker := ""
		if token.IsRoot() {
			marker = "ROOT"
		}
		fmt.Printf("%20q %8s %6d %6d %6d %6d %6t %s\n",
			token.Text, token.Pos, token.Id, token.Head,
			tree.Distance(token), tree.Depth(token), token.IsPunct(), marker)
	}

	return nil
}

func docCompleter(docs []sent.Doc) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}

		befCursor := in.TextBeforeCursor()
		if befCursor == "" {
			return s
		}

		// Only complete the doc id, the first token of the line.
		if strings.Contains(befCursor, " ") {
			return s
		}

		for _, doc := range docs {
			id := strconv.Itoa(doc.Id)
			if strings.HasPrefix(id, befCursor) {
				s = append(s, prompt.Suggest{Text: id, Description: "📖 " + doc.Title})
			}
		}

		return s
	}
}
