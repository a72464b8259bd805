package learnphoto_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"impractical.co/learnphoto"
	"impractical.co/learnphoto/content"
	"impractical.co/learnphoto/dom"
)

func ExampleRenderFragment_footer() {
	ctx := learnphoto.LoggingContext(context.Background(), slog.Default())

	site := learnphoto.NewPhotoSite(content.Default())
	site.Clock = func() time.Time { return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC) }

	out, err := learnphoto.RenderFragment(ctx, site, site.Footer())
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	//Output:
	// <div class="site-footer">
	// 	<p>© 2026 Learn Photography. All rights reserved.</p>
	// </div>
}

func ExampleRenderFragment_navigation() {
	ctx := learnphoto.LoggingContext(context.Background(), slog.Default())

	site := learnphoto.NewPhotoSite(content.Default())
	out, err := learnphoto.RenderFragment(ctx, site, site.NavBar())
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	//Output:
	// <div class="navbar">
	// 	<div class="logo"><a href="index.html">Learn Photography</a></div>
	// 	<ul class="nav-links">
	// 		<li><a href="index.html">Home</a></li>
	// 		<li><a href="history.html">History</a></li>
	// 		<li><a href="gallery.html">Gallery</a></li>
	// 		<li><a href="styles.html">Styles</a></li>
	// 		<li><a href="contact.html">Contact</a></li>
	// 	</ul>
	// </div>
}

func ExampleRenderFragment_gallery() {
	ctx := learnphoto.LoggingContext(context.Background(), slog.Default())

	site := learnphoto.NewPhotoSite(content.Store{})
	page := learnphoto.GalleryPage{
		Record: content.Gallery{
			Title: "Gallery",
			Images: []content.Image{
				{Src: "images/one.jpg", Alt: "First"},
				{Src: "images/two.jpg", Alt: "Second"},
			},
		},
	}
	out, err := learnphoto.RenderFragment(ctx, site, page)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	//Output:
	// <section class="gallery-section">
	// 	<h1>Gallery</h1>
	// 	<div class="gallery-grid">
	// 		<div class="gallery-item">
	// 			<img src="images/one.jpg" alt="First">
	// 		</div>
	// 		<div class="gallery-item">
	// 			<img src="images/two.jpg" alt="Second">
	// 		</div>
	// 	</div>
	// </section>
}

func ExampleInjector_Apply() {
	ctx := learnphoto.LoggingContext(context.Background(), slog.Default())

	doc, err := dom.Parse(strings.NewReader(`<!DOCTYPE html>
<html><head><title>Unknown</title></head>
<body id="workshops"><main id="page-content"></main></body></html>`))
	if err != nil {
		panic(err)
	}

	site := learnphoto.NewPhotoSite(content.Default())
	if err := learnphoto.NewInjector(site).Apply(ctx, doc); err != nil {
		panic(err)
	}
	if err := doc.Render(os.Stdout); err != nil {
		panic(err)
	}

	//Output:
	// <!DOCTYPE html><html><head><title>Unknown</title></head>
	// <body id="workshops"><main id="page-content"><p>Page not found.</p></main></body></html>
}
