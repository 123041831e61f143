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

func (cli *commandLine) course(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}
	switch args[0] {
	case "list":
		return cli.courseList(ctx)
	case "get":
		return cli.courseGet(ctx, args[1:])
	case "create":
		return cli.courseSave(ctx, args[1:], false)
	case "edit":
		return cli.courseSave(ctx, args[1:], true)
	case "delete":
		return cli.courseDelete(ctx, args[1:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) courseList(ctx context.Context) error {
	if err := cli.courses.Load(ctx, cli.gw.ListCourses); err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	items := cli.courses.Items()
	if len(items) == 0 {
		fmt.Fprintln(cli.out, "no courses found")
		return nil
	}
	for _, c := range items {
		fmt.Fprintf(cli.out, "%s\t%s\t%s\t%s\n", c.ID, c.Title, priceLabel(c.Price), c.Status)
	}
	return nil
}

func (cli *commandLine) courseGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("course get", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	c, err := cli.gw.GetCourse(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "title:     %s\n", c.Title)
	if c.SubTitle != "" {
		fmt.Fprintf(cli.out, "subtitle:  %s\n", c.SubTitle)
	}
	fmt.Fprintf(cli.out, "category:  %s\n", c.Category)
	fmt.Fprintf(cli.out, "level:     %s\n", c.Level)
	fmt.Fprintf(cli.out, "price:     %s\n", priceLabel(c.Price))
	fmt.Fprintf(cli.out, "status:    %s\n", c.Status)
	fmt.Fprintf(cli.out, "thumbnail: %s\n", c.Thumbnail)
	return nil
}

// courseSave drives the single create/edit form; edit mode pre-fills from the
// remote record and only overrides the fields given as flags.
func (cli *commandLine) courseSave(ctx context.Context, args []string, isEdit bool) error {
	name := "course create"
	if isEdit {
		name = "course edit"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "course id (edit only)")
	title := fs.String("title", "", "course title")
	subTitle := fs.String("subtitle", "", "course subtitle")
	description := fs.String("description", "", "course description (rich text accepted)")
	category := fs.String("category", "", "course category")
	level := fs.String("level", string(model.LevelBeginner), "beginner|intermediate|advanced")
	thumbnail := fs.String("thumbnail", "", "thumbnail URL")
	thumbnailFile := fs.String("thumbnail-file", "", "path to a thumbnail image; wins over -thumbnail")
	price := fs.Float64("price", 0, "course price")
	published := fs.Bool("published", false, "publish the course")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if isEdit && *id == "" {
		fs.Usage()
		return errHelp
	}

	f := form.NewCourseForm(notifier{cli.out}, cli.logger)
	defer f.Close()

	if isEdit {
		existing, err := cli.gw.GetCourse(ctx, *id)
		if err != nil {
			return err
		}
		f.OpenEdit(*id, dto.CourseInputFromModel(*existing))
	} else {
		f.OpenCreate()
	}

	values := f.Values()
	if flagWasSet(fs, "title") {
		values.Title = *title
	}
	if flagWasSet(fs, "subtitle") {
		values.SubTitle = *subTitle
	}
	if flagWasSet(fs, "description") {
		values.Description = *description
	}
	if flagWasSet(fs, "category") {
		values.Category = *category
	}
	if flagWasSet(fs, "level") {
		values.Level = *level
	}
	if flagWasSet(fs, "thumbnail") {
		values.Thumbnail = *thumbnail
	}
	if flagWasSet(fs, "price") {
		values.Price = price
	}
	if flagWasSet(fs, "published") {
		values.IsPublished = *published
	}
	f.SetValues(values)

	if *thumbnailFile != "" {
		file, err := dto.NewFileRef(*thumbnailFile)
		if err != nil {
			return err
		}
		if err := f.SelectThumbnail(file); err != nil {
			return err
		}
	}

	err := f.Submit(ctx, func(ctx context.Context, mode form.Mode, id string, in dto.CourseInput) error {
		if mode == form.ModeEdit {
			updated, err := cli.gw.UpdateCourse(ctx, id, in)
			if err != nil {
				return err
			}
			cli.courses.ApplyUpdate(id, func(model.Course) model.Course { return *updated })
			return nil
		}
		created, err := cli.gw.CreateCourse(ctx, in)
		if err != nil {
			return err
		}
		cli.courses.ApplyCreate(*created)
		fmt.Fprintf(cli.out, "id: %s\n", created.ID)
		return nil
	})
	if err != nil {
		cli.printFieldErrors(err)
		return err
	}
	return nil
}

func (cli *commandLine) courseDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("course delete", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	var gate confirm.Gate
	gate.RequestDelete(*id)
	if !cli.confirmPrompt(fmt.Sprintf("Delete course %s? This action cannot be undone.", *id)) {
		gate.Cancel()
		fmt.Fprintln(cli.out, "canceled")
		return nil
	}
	err := gate.Confirm(ctx, func(ctx context.Context, id string) error {
		if err := cli.gw.DeleteCourse(ctx, id); err != nil {
			return err
		}
		cli.courses.ApplyDelete(id)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "course deleted")
	return nil
}

func priceLabel(p *float64) string {
	if p == nil {
		return "Free"
	}
	return fmt.Sprintf("%.2f", *p)
}
