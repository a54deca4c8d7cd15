// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import "fmt"

const banner = `
		           __...--~~~~~-._   _.-~~~~~--...__
		         //               ` + "`V'" + `               \\
		        //                 |                 \\
		       //__...--~~~~~~-._  |  _.-~~~~~~--...__\\
		      //__.....----~~~~._\ | /_.~~~~----.....__\\
		     ====================\\|//====================
		                          ` + "`---`" + `
		      Welcome to the Bible Search and Study App!`

const menu = `
================================== COMMANDS MENU ====================================
  search <keyword/book/ref>         → Search for verses or references
  next / prev                       → Navigate search results
  bookmark [<Book> <Chapter:Verse>] → Save a verse (default: the current result)
  bookmarks                         → View saved bookmarks
  history [n]                       → View search history (optionally limit results)
  verseofday                        → Display the verse of the day
  help / home                       → Show this menu / return to the home screen
  exit                              → Quit the program
=====================================================================================`

func (s *Shell) banner() {
	fmt.Fprintln(s.out, banner)
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out, menu)
}
