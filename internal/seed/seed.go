// Package seed populates a fresh store with the demo identity and the sample
// event catalog the app ships with.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetmatch/internal/domain"
)

// DemoUsername is the username of the seeded demo account. All requests run
// as this user.
const DemoUsername = "demo_user"

const demoPassword = "password"

type sampleEvent struct {
	title       string
	description string
	category    domain.Category
	location    string
	date        string
	time        string
	image       string
}

var sampleEvents = []sampleEvent{
	{"Kahve & Sohbet", "Rahat bir atmosferde yeni insanlarla tanışma fırsatı", domain.CategoryDating, "Çankaya", "2024-12-05", "19:00", "https://images.unsplash.com/photo-1521017432531-fbd92d768814?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Romantik Akşam Yemeği", "Güzel manzaralı restoranda özel bir akşam", domain.CategoryDating, "Çankaya", "2024-12-05", "20:30", "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Speed Dating", "Kısa sürede birçok kişiyle tanışma fırsatı", domain.CategoryDating, "Kızılay", "2024-12-06", "19:30", "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Wine Tasting", "Şarap tadımı eşliğinde keyifli sohbetler", domain.CategoryDating, "Bahçelievler", "2024-12-07", "18:00", "https://images.unsplash.com/photo-1474722883778-792e7990302f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Salsa Dans Dersi", "Partner ile dans etmeyi öğrenin, yakınlaşın", domain.CategoryDating, "Bilkent", "2024-12-08", "20:00", "https://images.unsplash.com/photo-1504609773096-104ff2c73ba4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Sanat Galerisi Turu", "Çağdaş sanat sergisinde kültürel buluşma", domain.CategoryDating, "Ulus", "2024-12-09", "15:00", "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Çift Yoga Seansı", "Partner yogası ile ruhsal bağ kurun", domain.CategoryDating, "Beşevler", "2024-12-10", "10:00", "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Açık Hava Sinema", "Yıldızlar altında romantik film keyfi", domain.CategoryDating, "Ostim", "2024-12-11", "21:00", "https://images.unsplash.com/photo-1489185078471-9440f87861b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Yemek Pişirme Atölyesi", "Birlikte yemek yapın, beraber tadın", domain.CategoryDating, "Çankaya", "2024-12-12", "17:30", "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Kahvaltı Buluşması", "Hafta sonu rahat kahvaltısında tanışma", domain.CategoryDating, "Kızılay", "2024-12-13", "11:00", "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Yürüyüş Grubu", "Doğada keyifli bir yürüyüş ve piknik", domain.CategoryFriendship, "Bilkent", "2024-12-06", "14:00", "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Müze Gezisi", "Anadolu Medeniyetleri Müzesi'nde sanat ve tarih", domain.CategoryEvent, "Ulus", "2024-12-07", "11:00", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Kitap Kulübü", "Bu ayın kitabını tartışıyoruz, okuma severler davetli", domain.CategoryFriendship, "Kızılay", "2024-12-08", "15:30", "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Spor Aktivitesi", "Voleybol oynayıp eğlenelim, her seviyeye uygun", domain.CategoryFriendship, "Beşevler", "2024-12-10", "17:00", "https://images.unsplash.com/photo-1547919307-1ecb10702e6f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Fotoğrafçılık Turu", "Ankara'nın güzel yerlerini fotoğraflayalım", domain.CategoryFriendship, "Ulus", "2024-12-14", "13:00", "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Oyun Gecesi", "Masa oyunları ve eğlenceli aktiviteler", domain.CategoryFriendship, "Bahçelievler", "2024-12-15", "19:00", "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Konser Gecesi", "Canlı müzik performansı ve dans", domain.CategoryEvent, "Çankaya", "2024-12-16", "21:30", "https://images.unsplash.com/photo-1501612780327-45045538702b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
	{"Teknoloji Meetup", "Geliştiriciler ve teknik konuların tartışıldığı etkinlik", domain.CategoryEvent, "Bilkent", "2024-12-17", "18:30", "https://images.unsplash.com/photo-1515187029135-18ee286d815b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"},
}

// Run creates the demo user and the sample event catalog. It is a no-op when
// the demo user already exists, so it is safe to call on every boot.
func Run(ctx context.Context, logger *slog.Logger,
	users domain.UserRepository,
	events domain.EventRepository,
	hasher domain.PasswordHasher,
) error {
	if _, err := users.GetByUsername(ctx, DemoUsername); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("look up demo user: %w", err)
	}

	passwordHash, err := hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	demoUser := domain.NewUser(
		DemoUsername,
		passwordHash,
		"Ahmet Kaya",
		ptr("Yeni insanlarla tanışmayı seven, kahve tutkunu"),
		ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"),
	)
	if err := users.Create(ctx, demoUser); err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	for _, se := range sampleEvents {
		event := domain.NewEvent(se.title, se.description, se.category, se.location, se.date, se.time, ptr(se.image), demoUser.ID)
		if err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("create sample event %q: %w", se.title, err)
		}
	}

	logger.Info("seeded demo data", "user", DemoUsername, "events", len(sampleEvents))
	return nil
}

func ptr(s string) *string { return &s }
