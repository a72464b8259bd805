// Package learnphoto renders the Learn Photography website.
//
// The package is organized around Components and Renderables, built on top of
// html/template. A Component lists the templates it needs; a Renderable is a
// Component that can be executed on its own, either as a full document (the
// Shell) or as a fragment that gets injected into a document's mount point
// (the NavBar, the Footer, and one Page per PageKind).
//
// A PhotoSite is the singleton that holds everything rendering needs: the
// parsed-template cache, the content.Store, the site title and the clock used
// for the footer's copyright year. The store is passed in when the PhotoSite
// is built and only read afterwards.
//
// Documents are assembled by an Injector. Given a dom.Document, it fills the
// "nav-container" and "footer-container" mount points, then reads the page id
// from the document's <body> and fills "page-content" with the matching Page,
// or with a "Page not found" fragment if the id isn't one of the known kinds.
// Mount points that are missing are skipped. BuildDocument does all of this
// for a generated Shell, and Build writes every page of the site to disk.
package learnphoto
