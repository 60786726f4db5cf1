package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
	accountsvc "github.com/heartmarshall/vocabtrainer/internal/service/account"
	"github.com/heartmarshall/vocabtrainer/internal/service/study"
	"github.com/heartmarshall/vocabtrainer/internal/service/training"
	"github.com/heartmarshall/vocabtrainer/internal/service/vocabulary"
)

// ---------------------------------------------------------------------------
// Classifier
// ---------------------------------------------------------------------------

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <workbook.xlsx>",
		Short: "Show which column of each sheet holds which field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, failed, err := vocabulary.ClassifyWorkbook(cmd.Context(), c.app.Loader, args[0], c.app.Config.Import.Parallelism)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			t := newTable(append(append([]string{"sheet"}, roleHeader()...), "rows")...)
			for _, s := range ok {
				t.add(append(append([]string{s.Name}, mappingCells(s.Mapping)...), fmt.Sprint(s.Words))...)
			}
			t.render(out)
			printNotRecognized(out, failed)
			return nil
		},
	}
}

func (c *cli) trainCmd() *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "train <workbook.xlsx>",
		Short: "Retrain the column models from a correctly laid out workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Training.Relearn(cmd.Context(), args[0], training.RelearnInput{Report: report})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			t := newTable("model", "samples", "features", "path")
			t.add("english", fmt.Sprint(res.English.Samples), fmt.Sprint(res.English.Vocabulary), res.English.Path)
			t.add("russian", fmt.Sprint(res.Russian.Samples), fmt.Sprint(res.Russian.Vocabulary), res.Russian.Path)
			t.render(out)

			for _, m := range []struct {
				name string
				res  training.ModelResult
			}{{"english", res.English}, {"russian", res.Russian}} {
				if m.res.Report != nil {
					headerColor.Fprintf(out, "\n%s held-out report\n", m.name)
					fmt.Fprint(out, m.res.Report.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "score each model on its held-out half")
	return cmd
}

// ---------------------------------------------------------------------------
// Vocabulary
// ---------------------------------------------------------------------------

func (c *cli) importCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "import [workbook.xlsx]",
		Short: "Import every recognisable sheet of a workbook or a Google spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (sheet != "") {
				return errors.New("give either a workbook path or --sheet")
			}
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}

			var rep *vocabulary.ImportReport
			if sheet != "" {
				rep, err = c.app.Vocabulary.ImportSpreadsheet(ctx, sheet)
			} else {
				rep, err = c.app.Vocabulary.ImportWorkbook(ctx, args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			t := newTable(append(append([]string{"sheet"}, roleHeader()...), "rows")...)
			for _, s := range rep.Sheets {
				t.add(append(append([]string{s.Name}, mappingCells(s.Mapping)...), fmt.Sprint(s.Words))...)
			}
			t.render(out)
			okColor.Fprintf(out, "imported %d words, replaced %d older copies\n", rep.Imported, rep.Duplicates)
			printNotRecognized(out, rep.NotRecognized)
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "name of a Google spreadsheet to import instead of a workbook")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var sheet, share string

	cmd := &cobra.Command{
		Use:   "export [workbook.xlsx]",
		Short: "Write all visible words to a new workbook or Google spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (sheet != "") {
				return errors.New("give either a workbook path or --sheet")
			}
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if sheet != "" {
				res, err := c.app.Vocabulary.ExportSpreadsheet(ctx, sheet, share)
				if err != nil {
					return err
				}
				okColor.Fprintf(out, "exported %d words to %s\n", res.Words, res.URL)
				return nil
			}

			n, err := c.app.Vocabulary.ExportWorkbook(ctx, args[0])
			if err != nil {
				return err
			}
			okColor.Fprintf(out, "exported %d words to %s\n", n, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "title of a new Google spreadsheet to export to instead of a workbook")
	cmd.Flags().StringVar(&share, "share", "", "email to share the new spreadsheet with (default from config)")
	return cmd
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <Eng> [engT] [EngEx] [Rus] [RusEx]",
		Short: "Add one word typed by hand; use \"\" to skip a field",
		Args:  cobra.RangeArgs(1, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			n, err := c.app.Vocabulary.ImportRows(ctx, [][]string{args})
			if err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "added %d word\n", n)
			return nil
		},
	}
}

func printNotRecognized(out io.Writer, failed []vocabulary.SheetError) {
	for _, f := range failed {
		warnColor.Fprintf(out, "not recognized: %s\n", f.Error())
	}
}

// ---------------------------------------------------------------------------
// Study
// ---------------------------------------------------------------------------

func (c *cli) studyCmd() *cobra.Command {
	var (
		mode  string
		limit int
		days  int
		quiz  bool
	)

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Show a random deck of flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			deck, err := c.app.Study.Deck(ctx, study.DeckInput{Mode: domain.StudyMode(mode), Limit: limit, Days: days})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(deck) == 0 {
				warnColor.Fprintln(out, "no cards")
				return nil
			}
			if !quiz {
				for i, card := range deck {
					printCard(out, i+1, card, true)
				}
				return nil
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			correct := 0
			for i, card := range deck {
				printCard(out, i+1, card, false)
				fmt.Fprint(out, "     > ")
				if !in.Scan() {
					break
				}
				res := study.CheckAnswer(card, in.Text())
				if !res.Correct {
					errColor.Fprintf(out, "     expected %s\n", res.Expected)
					continue
				}
				correct++
				okColor.Fprintln(out, "     correct")
				if err := c.app.Study.MarkLearned(ctx, card.ID); err != nil {
					return err
				}
			}
			headerColor.Fprintf(out, "%d of %d correct\n", correct, len(deck))
			return in.Err()
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(domain.StudyModeNew), "deck: new, recent, or all")
	cmd.Flags().IntVar(&limit, "limit", 0, "cards in the deck (default from config)")
	cmd.Flags().IntVar(&days, "days", 0, "recent mode window in days (default from config)")
	cmd.Flags().BoolVar(&quiz, "quiz", false, "ask for each English word and mark correct answers as learned")
	return cmd
}

func (c *cli) markCmd() *cobra.Command {
	var unlearned bool

	cmd := &cobra.Command{
		Use:   "mark <word-id>",
		Short: "Mark a word as learned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			if unlearned {
				err = c.app.Study.MarkUnlearned(ctx, id)
			} else {
				err = c.app.Study.MarkLearned(ctx, id)
			}
			if err != nil {
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&unlearned, "unlearned", false, "put the word back among the new words")
	return cmd
}

func (c *cli) hideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hide <word-id>",
		Short: "Hide a word from every deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			if err := c.app.Study.Hide(ctx, id); err != nil {
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), "hidden")
			return nil
		},
	}
}

func (c *cli) unhideAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unhide-all",
		Short: "Return every hidden word to the decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			n, err := c.app.Study.UnhideAll(ctx)
			if err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "%d words visible again\n", n)
			return nil
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count learned and new words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := c.session(cmd)
			if err != nil {
				return err
			}
			s, err := c.app.Study.Stats(ctx)
			if err != nil {
				return err
			}
			t := newTable("learned", "new", "total")
			t.add(fmt.Sprint(s.WellKnown), fmt.Sprint(s.New), fmt.Sprint(s.WellKnown+s.New))
			t.render(cmd.OutOrStdout())
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// Administration
// ---------------------------------------------------------------------------

func (c *cli) accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if err := c.connect(cmd); err != nil {
				return err
			}
			a, err := c.app.Accounts.Create(cmd.Context(), accountsvc.CreateInput{Email: email, Password: password})
			if err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", a.Username, a.Email)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "account email")
	create.Flags().StringVar(&password, "password", "", "account password (default from "+passwordEnv+")")
	_ = create.MarkFlagRequired("email")

	cmd.AddCommand(create)
	return cmd
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Migrate(cmd.Context()); err != nil {
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), "database is up to date")
			return nil
		},
	}
}
