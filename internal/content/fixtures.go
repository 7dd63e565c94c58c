package content

import (
	"context"
	"time"
)

var defaultBlogPosts = []NewBlogPost{
	{
		Title:      "The Symbolism of Buddha Statues",
		Slug:       "symbolism-buddha-statues",
		Content:    "Buddha statues are more than decorative pieces; they carry deep symbolism in Buddhist tradition. The different hand gestures (mudras) represent various aspects of the Buddha's teachings. For example, the earth-touching right hand represents the moment of enlightenment, while hands placed in the lap signify meditation. The elongated earlobes remind us of the Buddha's royal past and his rejection of material wealth. The serene smile and half-closed eyes demonstrate the perfect balance between meditation and engagement with the world...",
		Excerpt:    "Understanding the meaning behind different Buddha poses and what they represent in Buddhist tradition.",
		CoverImage: "https://images.unsplash.com/photo-1530254843304-219aac509830?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400&q=80",
		Author:     "Tenzin Norbu",
		Published:  true,
		CreatedAt:  time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		Title:      "The Healing Sound of Singing Bowls",
		Slug:       "healing-sound-singing-bowls",
		Content:    "Tibetan singing bowls have been used for centuries for meditation and healing. When played, these bowls create a range of harmonics that are believed to entrain brainwaves into more relaxed states. Traditional bowls are made from a seven-metal alloy representing gold, silver, mercury, copper, iron, tin, and lead, though the exact proportions remain a closely guarded secret among master craftsmen. Each metal is associated with a celestial body and particular energy. Modern research has begun to validate the therapeutic effects of these instruments on stress reduction, pain management, and even cellular regeneration...",
		Excerpt:    "How singing bowls can enhance meditation practice and promote healing through sound vibrations.",
		CoverImage: "https://images.unsplash.com/photo-1519922545699-fee10aaa0a3b?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400&q=80",
		Author:     "Karma Rinchen",
		Published:  true,
		CreatedAt:  time.Date(2023, 4, 28, 0, 0, 0, 0, time.UTC),
	},
	{
		Title:      "Meet the Master Craftsmen",
		Slug:       "meet-master-craftsmen",
		Content:    "Behind each Old Stupa piece is a master craftsman with decades of experience and devotion to their art. Many of our artisans began training in childhood through the traditional master-apprentice system. Take Pemba Sherpa, for example, who has been creating bronze Buddha statues for over 35 years. He learned the lost-wax casting technique from his father and has refined it to create statues of exceptional detail and spiritual presence. Or Lhamo Dolkar, a thangka painter who creates her own mineral-based pigments using techniques passed down through 15 generations in her family. These craftspeople don't just create objects; they participate in a living tradition that connects them to centuries of Buddhist artistic expression...",
		Excerpt:    "The stories of our artisans who have dedicated their lives to preserving traditional Buddhist crafts.",
		CoverImage: "https://images.unsplash.com/photo-1570289470121-c1b5b36631a0?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&h=400&q=80",
		Author:     "Dorje Lama",
		Published:  true,
		CreatedAt:  time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
	},
}

var defaultTestimonials = []NewTestimonial{
	{
		Name:      "Sarah J.",
		Location:  "United States",
		Avatar:    "https://randomuser.me/api/portraits/women/45.jpg",
		Rating:    5,
		Content:   "The Medicine Buddha statue I received is simply beautiful. The detail and expression are remarkable, and I can feel the devotion that went into creating it. It has become the centerpiece of my meditation space.",
		Published: true,
	},
	{
		Name:      "David L.",
		Location:  "Canada",
		Avatar:    "https://randomuser.me/api/portraits/men/32.jpg",
		Rating:    5,
		Content:   "My singing bowl arrived quickly and securely packaged. The sound is pure and resonant - much better quality than others I've tried. The certificate of authenticity and information about the crafting process was a lovely touch.",
		Published: true,
	},
	{
		Name:      "Emma R.",
		Location:  "Australia",
		Avatar:    "https://randomuser.me/api/portraits/women/68.jpg",
		Rating:    4,
		Content:   "I'm extremely pleased with my Green Tara statue. The gold plating is exquisite and the gemstone inlays are beautifully done. The communication from Old Stupa was excellent and they were happy to answer all my questions about the symbolism.",
		Published: true,
	},
}

// Seed loads the fixture blog posts and testimonials.
func Seed(ctx context.Context, repo Repository) error {
	for _, p := range defaultBlogPosts {
		if _, err := repo.CreateBlogPost(ctx, p); err != nil {
			return err
		}
	}
	for _, t := range defaultTestimonials {
		if _, err := repo.CreateTestimonial(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
