package books

import "github.com/mrlokans/booksinventory/internal/entities"

// initialBooks are written on the first run, when the table is empty.
func initialBooks() []entities.Book {
	return []entities.Book{
		{
			Title:          "დიდგორის ცაზე ფრენდა ის ჯვარი",
			Author:         "გოჩა მანველიძე",
			Genre:          "ისტორიული რომანი",
			Shelf:          1,
			ProductionYear: 2010,
			Language:       "ქართული",
		},
		{
			Title:          "ალქიმიკოსი",
			Author:         "პაულო კოელიო",
			Genre:          "ფენტეზი, სათავგადასავლო",
			Shelf:          3,
			ProductionYear: 2016,
			Language:       "ქართული",
		},
	}
}
