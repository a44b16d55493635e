package repository

// Per-entity query configuration. Search columns list both languages of
// each searchable pair so a hit in either language matches.
var (
	BannerSpec = EntitySpec{
		ShowFlags: true,
		Order:     "sort_order ASC, created_at ASC, id ASC",
	}

	CustomerSpec = EntitySpec{
		Order: "sort_order ASC, created_at ASC, id ASC",
	}

	NewsSpec = EntitySpec{
		SearchColumns: []string{
			"zh_title", "en_title",
			"zh_description", "en_description",
			"zh_tags", "en_tags",
		},
		ShowFlags: true,
		Status:    true,
		Category:  true,
		Order:     "created_at DESC, id DESC",
		Preload:   []string{"Category"},
	}

	BlogSpec = EntitySpec{
		SearchColumns: []string{
			"zh_title", "en_title",
			"zh_description", "en_description",
			"zh_tags", "en_tags",
		},
		ShowFlags: true,
		Status:    true,
		Category:  true,
		Order:     "created_at DESC, id DESC",
		Preload:   []string{"Category"},
	}

	CaseSpec = EntitySpec{
		SearchColumns: []string{
			"zh_title", "en_title",
			"zh_description", "en_description",
			"zh_company_name", "en_company_name",
			"zh_company_description", "en_company_description",
			"zh_tags", "en_tags",
		},
		ShowFlags: true,
		Status:    true,
		Category:  true,
		Order:     "created_at DESC, id DESC",
		Preload:   []string{"Category"},
	}

	ServiceSpec = EntitySpec{
		SearchColumns: []string{
			"zh_title", "en_title",
			"zh_description", "en_description",
		},
		ShowFlags: true,
		Status:    true,
		Category:  true,
		Order:     "created_at DESC, id DESC",
		Preload:   []string{"Category"},
		ListOmit:  []string{"zh_content", "en_content"},
	}

	CategorySpec = EntitySpec{
		SearchColumns: []string{"zh_name", "en_name"},
		Order:         "created_at DESC, id DESC",
	}

	ContactSpec = EntitySpec{
		SearchColumns: []string{"name", "email", "phone", "message"},
		Order:         "created_at DESC, id DESC",
	}
)
