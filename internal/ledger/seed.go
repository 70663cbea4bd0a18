package ledger

import "time"

// seedEntries is the demo history loaded on a fresh installation.
func seedEntries() []Entry {
	return []Entry{
		{
			ID:       "t4",
			Service:  ServiceSnapshot{Title: "Aula de português", Category: "Educação"},
			Provider: ProviderSnapshot{Name: "João Santos", AvatarURL: "/avatars/joao.jpg"},
			Hours:    2,
			Date:     time.Date(2023, time.August, 14, 0, 0, 0, 0, time.UTC),
			Status:   StatusPending,
			Type:     TypeEarned,
		},
		{
			ID:       "t2",
			Service:  ServiceSnapshot{Title: "Reparo de computador", Category: "Tecnologia"},
			Provider: ProviderSnapshot{Name: "Ana Costa", AvatarURL: "/avatars/ana.jpg"},
			Hours:    2,
			Date:     time.Date(2023, time.August, 12, 0, 0, 0, 0, time.UTC),
			Status:   StatusPending,
			Type:     TypeEarned,
		},
		{
			ID:       "t1",
			Service:  ServiceSnapshot{Title: "Aula de violão", Category: "Música"},
			Provider: ProviderSnapshot{Name: "Carlos Lima", AvatarURL: "/avatars/carlos.jpg"},
			Hours:    1.5,
			Date:     time.Date(2023, time.August, 10, 0, 0, 0, 0, time.UTC),
			Status:   StatusCompleted,
			Type:     TypeSpent,
		},
		{
			ID:       "t3",
			Service:  ServiceSnapshot{Title: "Limpeza de casa", Category: "Limpeza"},
			Provider: ProviderSnapshot{Name: "Maria Silva", AvatarURL: "/avatars/maria.jpg"},
			Hours:    3,
			Date:     time.Date(2023, time.August, 8, 0, 0, 0, 0, time.UTC),
			Status:   StatusCompleted,
			Type:     TypeSpent,
		},
	}
}
