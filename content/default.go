package content

// Default returns the site's built-in content. Every call builds a new Store,
// so callers never share slices.
func Default() Store {
	return Store{
		Home: Home{
			Title:        "Learn Photography",
			HeroImage:    "images/hero-mountains.jpg",
			HeroText:     "Master the art of capturing beautiful images",
			AboutHeading: "Why Learn Photography?",
			AboutParagraph: RichText{
				{Text: "Photography is an accessible form of creative expression that allows you to preserve memories, tell stories and explore the world around you. Our lessons cover composition, exposure, lighting, camera settings and post-processing to help you build a solid foundation."},
				{Break: true},
				{Break: true},
				{Text: "Whether you're a beginner picking up a camera for the first time or an experienced shooter looking to refine your skills, you'll find step-by-step guides, practical exercises and galleries to inspire your creativity. Our goal is to help you unlock your artistic potential and become confident behind the lens."},
			},
		},
		History: History{
			Title: "History of Photography",
			Paragraphs: []string{
				"Photography has evolved tremendously since the early 19th century. Understanding its history helps you appreciate how far the art and science have come.",
				"Early methods like the daguerreotype required long exposure times and meticulous chemical processes. As technology progressed, cameras became smaller, film became more sensitive and photography became accessible to the masses.",
				"Today, digital sensors and smartphones allow anyone to take high-quality photos in an instant. Exploring this timeline will provide context for your photographic journey.",
				"During the late 20th century, instant and Polaroid cameras allowed photographers to see results immediately, paving the way for digital photography.",
				"The 21st century has seen photography converge with computing. Smartphones, social media and AI-powered tools have democratized image making and editing, empowering everyone to be a storyteller.",
			},
			Timeline: []TimelineEntry{
				{Year: "1826", Description: "Nicéphore Niépce captures the first permanent photograph using a camera obscura."},
				{Year: "1839", Description: "Louis Daguerre introduces the daguerreotype, the first commercially viable photographic process."},
				{Year: "1888", Description: "George Eastman patents the Kodak camera, putting photography into the hands of the general public."},
				{Year: "1948", Description: "Edwin Land launches the Polaroid Model 95, making instant photography possible."},
				{Year: "1991", Description: "Kodak releases the first professional digital SLR camera, ushering in the digital era."},
				{Year: "2007", Description: "The first iPhone is released, sparking the rise of smartphone photography."},
				{Year: "2010", Description: "Smartphone cameras become mainstream, making photography accessible to anyone with a phone."},
				{Year: "2012", Description: "Mirrorless interchangeable-lens cameras gain popularity, offering DSLR-like quality in a smaller form factor."},
				{Year: "2020", Description: "Advances in computational photography and AI drastically improve image quality and creative possibilities on mobile devices."},
			},
		},
		Gallery: Gallery{
			Title: "Gallery",
			Images: []Image{
				{Src: "images/gallery-01-sunset-mountains.jpg", Alt: "Sunset over a mountain ridge"},
				{Src: "images/gallery-02-lake-reflection.jpg", Alt: "Calm lake with reflection of mountains"},
				{Src: "images/gallery-03-forest-waterfall.jpg", Alt: "Forest waterfall surrounded by rocks"},
				{Src: "images/gallery-04-desert-stars.jpg", Alt: "Starry night sky over a desert landscape"},
				{Src: "images/gallery-05-dew-leaf.jpg", Alt: "Close-up of dew on a leaf"},
				{Src: "images/gallery-06-city-sunset.jpg", Alt: "City skyline at sunset"},
				{Src: "images/gallery-07-desert-road.jpg", Alt: "Desert road leading into mountains"},
				{Src: "images/gallery-08-tree-silhouette.jpg", Alt: "Silhouette of a tree against a colorful sky"},
				{Src: "images/gallery-09-beach-waves.jpg", Alt: "Gentle waves on a sandy beach"},
				{Src: "images/gallery-10-street-motion.jpg", Alt: "Crowded street with motion blur"},
				{Src: "images/gallery-11-milky-way.jpg", Alt: "Starry night sky and Milky Way"},
				{Src: "images/gallery-12-photographer-sunset.jpg", Alt: "Silhouette of a photographer at sunset"},
				{Src: "images/gallery-13-mountain-lake-forest.jpg", Alt: "Mountain lake surrounded by forest"},
				{Src: "images/gallery-14-autumn-forest-path.jpg", Alt: "Path through an autumn forest"},
				{Src: "images/gallery-15-rainbow-mountains.jpg", Alt: "Rainbow arching over mountains and valley"},
			},
		},
		Styles: Styles{
			Title: "Photography Styles & Techniques",
			Cards: []StyleCard{
				{
					Title:       "Portrait",
					Description: "Learn how to capture the essence of a person through lighting, composition and interaction. Portrait photography focuses on bringing out the subject’s personality and character.",
					Image:       "images/style-portrait.jpg",
				},
				{
					Title:       "Landscape",
					Description: "Discover techniques for photographing expansive vistas, from golden hour lighting to the use of leading lines and framing. Landscape photography emphasizes the natural world and its beauty.",
					Image:       "images/style-landscape.jpg",
				},
				{
					Title:       "Street",
					Description: "Capture candid moments in everyday life while remaining unobtrusive. Street photography teaches observation, quick reflexes and storytelling through images.",
					Image:       "images/style-street.jpg",
				},
				{
					Title:       "Abstract",
					Description: "Experiment with shapes, colors and textures to create artistic compositions that may not depict a recognizable subject. Abstract photography pushes you to see beyond the obvious.",
					Image:       "images/style-abstract.jpg",
				},
				{
					Title:       "Macro",
					Description: "Delve into the world of the very small by photographing subjects at close range. Macro photography reveals textures and details invisible to the naked eye.",
					Image:       "images/style-macro.jpg",
				},
				{
					Title:       "Wildlife",
					Description: "Learn how to capture animals in their natural habitats. Patience, timing and knowledge of animal behaviour are key to successful wildlife photography.",
					Image:       "images/style-wildlife.jpg",
				},
				{
					Title:       "Black & White",
					Description: "Focus on light, shadow and contrast by stripping away colour. Black & white photography emphasises mood, texture and composition.",
					Image:       "images/style-black-and-white.jpg",
				},
				{
					Title:       "Travel",
					Description: "Document your journeys with vibrant imagery that tells a story. Travel photography encompasses landscapes, architecture, people and culture.",
					Image:       "images/style-travel.jpg",
				},
				{
					Title:       "Minimalist",
					Description: "Simplify your compositions by focusing on minimal elements. Negative space and clean lines create striking images with a modern aesthetic.",
					Image:       "images/style-minimalist.jpg",
				},
				{
					Title:       "Documentary",
					Description: "Tell real stories through your camera lens. Documentary photography captures candid moments and socio-cultural events with honesty and empathy.",
					Image:       "images/style-documentary.jpg",
				},
				{
					Title:       "Fashion",
					Description: "Highlight clothing and style with creative concepts and precise lighting. Fashion photography blends art and commerce to create striking visuals.",
					Image:       "images/style-fashion.jpg",
				},
				{
					Title:       "Sports",
					Description: "Freeze action and convey the energy of sports. Master timing, panning and autofocus techniques to capture athletes in motion.",
					Image:       "images/style-sports.jpg",
				},
			},
		},
		Contact: Contact{
			Title:       "Contact Us",
			Description: "Do you have questions about photography techniques, equipment recommendations or photo editing? We’d love to help you on your learning journey. You can also follow us on social media for tips and inspiration.",
			Address:     "123 Learning Lane, Washington, DC, USA",
			Phone:       "+1 (555) 123-4567",
			Email:       "hello@learnphotography.com",
		},
	}
}
