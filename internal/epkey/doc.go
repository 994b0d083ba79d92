// Package epkey derives normalized identity keys for episode presence
// checks.
//
// A key has the shape "<SeasonEpisode> - <date> - <absDigits> - " and can be
// extracted either from a catalog CSV row or from a filename. Both paths
// normalize the raw key with textutil.NormalizeKey before comparison, so
// Unicode punctuation noise never breaks equality. The optional XL qualifier
// after the absolute episode number marks an extended cut and is deliberately
// excluded from the key: an XL file counts as present for the plain episode.
package epkey
