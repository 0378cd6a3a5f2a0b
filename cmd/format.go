package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/blu3eee/gospoty/pkg/spotify"
)

// Column widths for tabular output, in display columns
const (
	nameColWidth   = 36
	artistColWidth = 24
	albumColWidth  = 24
	dateColWidth   = 10
)

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters,
// so emoji and CJK text count by their visual width.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)
	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)
		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// Truncate can land short of the target when a wide rune
		// straddles the boundary, so pad back up to exact width
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}
	return text
}

// artistNames joins artist names for display
func artistNames(artists []spotify.SimplifiedArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// formatDuration renders a millisecond duration as m:ss
func formatDuration(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// detailLine prints one aligned label/value pair of a detail view
func detailLine(label string, value interface{}) {
	fmt.Printf("%-12s%v\n", label, value)
}

// printTrack prints a full track detail view
func printTrack(t *spotify.Track) {
	detailLine("Track", t.Name)
	detailLine("Artists", artistNames(t.Artists))
	detailLine("Album", t.Album.Name)
	detailLine("Released", t.Album.ReleaseDate)
	detailLine("Length", formatDuration(t.DurationMS))
	detailLine("Popularity", t.Popularity)
	if t.Explicit {
		detailLine("Explicit", "yes")
	}
	if t.ExternalIDs.ISRC != "" {
		detailLine("ISRC", t.ExternalIDs.ISRC)
	}
	if t.ExternalURLs.Spotify != "" {
		detailLine("URL", t.ExternalURLs.Spotify)
	}
}

// printTrackTable prints tracks in fixed-width columns
func printTrackTable(tracks []spotify.Track) {
	for i, t := range tracks {
		fmt.Printf("%3d  %s  %s  %s  %5s\n",
			i+1,
			padToWidth(t.Name, nameColWidth),
			padToWidth(artistNames(t.Artists), artistColWidth),
			padToWidth(t.Album.Name, albumColWidth),
			formatDuration(t.DurationMS))
	}
}

// printSimplifiedTrackTable prints album tracks numbered by track position
func printSimplifiedTrackTable(tracks []spotify.SimplifiedTrack) {
	for _, t := range tracks {
		fmt.Printf("%3d  %s  %s  %5s\n",
			t.TrackNumber,
			padToWidth(t.Name, nameColWidth),
			padToWidth(artistNames(t.Artists), artistColWidth),
			formatDuration(t.DurationMS))
	}
}

// printAlbum prints a full album detail view
func printAlbum(a *spotify.Album) {
	detailLine("Album", a.Name)
	detailLine("Artists", artistNames(a.Artists))
	detailLine("Released", a.ReleaseDate)
	detailLine("Tracks", a.TotalTracks)
	if a.Label != "" {
		detailLine("Label", a.Label)
	}
	detailLine("Popularity", a.Popularity)
	if a.ExternalURLs.Spotify != "" {
		detailLine("URL", a.ExternalURLs.Spotify)
	}
}

// printAlbumTable prints full albums in fixed-width columns
func printAlbumTable(albums []spotify.Album) {
	for _, a := range albums {
		fmt.Printf("%s  %s  %s  %3d tracks\n",
			padToWidth(a.Name, nameColWidth),
			padToWidth(artistNames(a.Artists), artistColWidth),
			padToWidth(a.ReleaseDate, dateColWidth),
			a.TotalTracks)
	}
}

// printSimplifiedAlbumTable prints album listings in fixed-width columns
func printSimplifiedAlbumTable(albums []spotify.SimplifiedAlbum) {
	for _, a := range albums {
		fmt.Printf("%s  %s  %s\n",
			padToWidth(a.Name, nameColWidth),
			padToWidth(artistNames(a.Artists), artistColWidth),
			padToWidth(a.ReleaseDate, dateColWidth))
	}
}

// printArtist prints a full artist detail view
func printArtist(a *spotify.Artist) {
	detailLine("Artist", a.Name)
	if len(a.Genres) > 0 {
		detailLine("Genres", strings.Join(a.Genres, ", "))
	}
	detailLine("Followers", a.Followers.Total)
	detailLine("Popularity", a.Popularity)
	if a.ExternalURLs.Spotify != "" {
		detailLine("URL", a.ExternalURLs.Spotify)
	}
}

// printArtistTable prints artists in fixed-width columns
func printArtistTable(artists []spotify.Artist) {
	for _, a := range artists {
		fmt.Printf("%s  %s  %9d followers\n",
			padToWidth(a.Name, nameColWidth),
			padToWidth(strings.Join(a.Genres, ", "), artistColWidth),
			a.Followers.Total)
	}
}

// printPlaylist prints a playlist header followed by its first page of
// tracks
func printPlaylist(p *spotify.Playlist) {
	detailLine("Playlist", p.Name)
	if p.Owner.DisplayName != nil && *p.Owner.DisplayName != "" {
		detailLine("Owner", *p.Owner.DisplayName)
	}
	if p.Description != nil && *p.Description != "" {
		detailLine("About", *p.Description)
	}
	detailLine("Tracks", p.Tracks.Total)
	if p.ExternalURLs.Spotify != "" {
		detailLine("URL", p.ExternalURLs.Spotify)
	}

	if len(p.Tracks.Items) > 0 {
		fmt.Println()
		for i, item := range p.Tracks.Items {
			t := item.Track
			fmt.Printf("%3d  %s  %s  %5s\n",
				i+1,
				padToWidth(t.Name, nameColWidth),
				padToWidth(artistNames(t.Artists), artistColWidth),
				formatDuration(t.DurationMS))
		}
	}
}
