package main

import (
	"context"
	"flag"
	"fmt"

	"lmsadmin/internal/confirm"
	"lmsadmin/internal/dto"
	"lmsadmin/internal/form"
	"lmsadmin/internal/model"
)

func (cli *commandLine) lecture(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}
	switch args[0] {
	case "list":
		return cli.lectureList(ctx, args[1:])
	case "create":
		return cli.lectureSave(ctx, args[1:], false)
	case "edit":
		return cli.lectureSave(ctx, args[1:], true)
	case "delete":
		return cli.lectureDelete(ctx, args[1:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) lectureList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lecture list", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	courseID := fs.String("course", "", "parent course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *courseID == "" {
		fs.Usage()
		return errHelp
	}

	err := cli.lectures.Load(ctx, func(ctx context.Context) ([]model.Lecture, error) {
		return cli.gw.ListLectures(ctx, *courseID)
	})
	if err != nil {
		return fmt.Errorf("loading lectures: %w", err)
	}
	items := cli.lectures.Items()
	if len(items) == 0 {
		fmt.Fprintln(cli.out, "no lectures found")
		return nil
	}
	for _, l := range items {
		duration := l.Duration
		if duration == "" {
			duration = "N/A"
		}
		free := ""
		if l.IsPreviewFree {
			free = "free preview"
		}
		fmt.Fprintf(cli.out, "%s\t%s\t%s\t%s\n", l.ID, l.LectureTitle, duration, free)
	}
	return nil
}

// lectureSave drives the single create/edit lecture form. Edit mode pre-fills
// from the loaded collection, the same row the table showed.
func (cli *commandLine) lectureSave(ctx context.Context, args []string, isEdit bool) error {
	name := "lecture create"
	if isEdit {
		name = "lecture edit"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	courseID := fs.String("course", "", "parent course id")
	id := fs.String("id", "", "lecture id (edit only)")
	title := fs.String("title", "", "lecture title")
	video := fs.String("video", "", "video URL")
	free := fs.Bool("free", false, "preview is free")
	duration := fs.String("duration", "", "display duration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *courseID == "" || (isEdit && *id == "") {
		fs.Usage()
		return errHelp
	}

	err := cli.lectures.Load(ctx, func(ctx context.Context) ([]model.Lecture, error) {
		return cli.gw.ListLectures(ctx, *courseID)
	})
	if err != nil {
		return fmt.Errorf("loading lectures: %w", err)
	}

	f := form.NewLectureForm(notifier{cli.out}, cli.logger)
	if isEdit {
		existing, ok := cli.lectures.Get(*id)
		if !ok {
			return fmt.Errorf("lecture %s not found in course %s", *id, *courseID)
		}
		f.OpenEdit(*id, dto.LectureInputFromModel(existing))
	} else {
		f.OpenCreate()
	}
	defer f.Close()

	values := f.Values()
	if flagWasSet(fs, "title") {
		values.LectureTitle = *title
	}
	if flagWasSet(fs, "video") {
		values.VideoURL = *video
	}
	if flagWasSet(fs, "free") {
		values.IsPreviewFree = *free
	}
	if flagWasSet(fs, "duration") {
		values.Duration = *duration
	}
	f.SetValues(values)

	err = f.Submit(ctx, func(ctx context.Context, mode form.Mode, id string, in dto.LectureInput) error {
		if mode == form.ModeEdit {
			updated, err := cli.gw.UpdateLecture(ctx, id, in)
			if err != nil {
				return err
			}
			cli.lectures.ApplyUpdate(id, func(model.Lecture) model.Lecture { return *updated })
			return nil
		}
		created, err := cli.gw.CreateLecture(ctx, *courseID, in)
		if err != nil {
			return err
		}
		cli.lectures.ApplyCreate(*created)
		fmt.Fprintf(cli.out, "id: %s\n", created.ID)
		return nil
	})
	if err != nil {
		cli.printFieldErrors(err)
		return err
	}
	return nil
}

func (cli *commandLine) lectureDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lecture delete", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "lecture id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	var gate confirm.Gate
	gate.RequestDelete(*id)
	if !cli.confirmPrompt(fmt.Sprintf("Delete lecture %s? This will permanently remove it.", *id)) {
		gate.Cancel()
		fmt.Fprintln(cli.out, "canceled")
		return nil
	}
	err := gate.Confirm(ctx, func(ctx context.Context, id string) error {
		if err := cli.gw.DeleteLecture(ctx, id); err != nil {
			return err
		}
		cli.lectures.ApplyDelete(id)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "lecture deleted")
	return nil
}
