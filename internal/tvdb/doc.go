// Package tvdb builds the episode catalog by scraping TheTVDB's public
// series listing pages. It deliberately avoids the authenticated API: the
// "all seasons" and season HTML pages carry everything the catalog needs.
package tvdb
