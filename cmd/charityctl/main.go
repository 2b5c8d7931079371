package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/configs"
	"giving-tree-admin/internal/delivery/givingapi"
	"giving-tree-admin/internal/delivery/kafka"
	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/uploader"
)

// charityctl submits a charity described in a JSON file through the same form
// rules the dashboard applies.
func main() {
	_ = godotenv.Load()

	file := flag.String("file", "charity.json", "charity draft JSON (name, description, website, imageUrl, lineItems)")
	id := flag.Int64("id", 0, "update this charity instead of creating one")
	image := flag.String("image", "", "local image to upload as the charity image")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.SetLevel(cfg.Level())

	raw, err := os.ReadFile(*file)
	if err != nil {
		logrus.Fatalf("read draft file: %s", err)
	}
	var draft models.CharityDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		logrus.Fatalf("decode draft file: %s", err)
	}

	api := givingapi.NewClient(cfg.GivingAPIURL, cfg.GivingAPITimeout)
	opts := []form.Option{form.WithBounds(cfg.MinWishes, cfg.MaxWishes)}
	if cfg.CloudinaryEnabled() {
		cld, err := uploader.NewCloudinary(uploader.CloudinaryConfig{
			CloudName:    cfg.CloudinaryCloud,
			UploadPreset: cfg.CloudinaryPreset,
			Folder:       cfg.CloudinaryFolder,
		})
		if err != nil {
			logrus.Fatalf("cloudinary: %s", err)
		}
		opts = append(opts, form.WithUploader(uploader.NewOptimizing(cld, cfg.UploadMaxBytes)))
	}
	if cfg.KafkaEnabled() {
		pub := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		opts = append(opts, form.WithNotifiers(pub))
	}

	var ctrl *form.Controller
	if *id > 0 {
		charity, wishes := editSource(*id, draft)
		ctrl = form.NewEditController(api, charity, wishes, opts...)
	} else {
		ctrl = form.NewController(api, opts...)
	}
	if err := loadDraft(ctrl, draft); err != nil {
		logrus.Fatalf("load draft: %s", err)
	}

	ctx := context.Background()
	if *image != "" {
		f, err := os.Open(*image)
		if err != nil {
			logrus.Fatalf("open image: %s", err)
		}
		url, err := ctrl.AttachImage(ctx, filepath.Base(*image), f)
		f.Close()
		if err != nil {
			logrus.Fatalf("upload image: %s", err)
		}
		logrus.Printf("image uploaded to %s", url)
	}

	payload, err := ctrl.Submit(ctx)
	if err != nil {
		logrus.Fatalf("submit failed: %s", err)
	}
	logrus.Printf("charity %q submitted with %d wishes, total %.2f", payload.Name, len(payload.LineItems), payload.Total())
}

// editSource turns the file into the charity and wishes an edit form starts
// from, so wish ids in the file reach the backend.
func editSource(id int64, d models.CharityDraft) (models.Charity, []models.Wish) {
	charity := models.Charity{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Website:     d.Website,
		ImageURL:    d.ImageURL,
	}
	wishes := make([]models.Wish, 0, len(d.LineItems))
	for _, li := range d.LineItems {
		w := models.Wish{
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			CharityName: d.Name,
		}
		if li.ID != nil {
			w.ID = *li.ID
		}
		wishes = append(wishes, w)
	}
	return charity, wishes
}

// loadDraft replays a draft through the controller as if typed into the form,
// so coercion and the wish bounds apply exactly as in the dashboard.
func loadDraft(c *form.Controller, d models.CharityDraft) error {
	fields := []struct {
		f form.Field
		v string
	}{
		{form.FieldName, d.Name},
		{form.FieldDescription, d.Description},
		{form.FieldWebsite, d.Website},
		{form.FieldImageURL, d.ImageURL},
	}
	for _, fv := range fields {
		if err := c.UpdateField(fv.f, fv.v); err != nil {
			return fmt.Errorf("%s: %w", fv.f, err)
		}
	}

	for len(c.State().Draft.LineItems) < len(d.LineItems) {
		if err := c.AddLineItem(); err != nil {
			return err
		}
	}
	for i, li := range d.LineItems {
		values := []struct {
			f form.LineItemField
			v string
		}{
			{form.ItemName, li.Name},
			{form.ItemDescription, li.Description},
			{form.ItemQuantity, strconv.FormatFloat(li.Quantity, 'f', -1, 64)},
			{form.ItemUnitPrice, strconv.FormatFloat(li.UnitPrice, 'f', -1, 64)},
		}
		for _, fv := range values {
			if err := c.UpdateLineItem(i, fv.f, fv.v); err != nil {
				return fmt.Errorf("wish %d %s: %w", i+1, fv.f, err)
			}
		}
	}
	return nil
}
