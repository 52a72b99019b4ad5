// Package stars classifies stem relationships into the two star families
// used across a chart: the ten major stars (Ten Gods), relating the day stem
// to any other stem, and the twelve minor stars (Twelve Stages), relating a
// stem to a branch and carrying the energy score.
package stars
